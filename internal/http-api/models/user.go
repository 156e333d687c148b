package models

import "time"

type User struct {
	Email     string     `gorm:"primaryKey" json:"email"`
	Name      string     `gorm:"not null" json:"name"`
	Country   *string    `json:"country,omitempty"`
	Picture   *string    `json:"picture,omitempty"`
	Birthday  Date       `gorm:"embedded;embeddedPrefix:birthday_" json:"birthday,omitzero"`
	Password  string     `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	Roles     StringList `json:"roles,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
