package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Movie struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"not null;index" json:"title"`
	Overview    *string      `json:"overview,omitempty"`
	Tagline     *string      `json:"tagline,omitempty"`
	Collection  *Collection  `gorm:"type:text" json:"collection,omitempty"`
	Genres      StringList   `json:"genres,omitempty"`
	ReleaseDate Date         `gorm:"embedded;embeddedPrefix:release_" json:"releaseDate,omitzero"`
	Keywords    StringList   `json:"keywords,omitempty"`
	Producers   ProducerList `json:"producers,omitempty"`
	Crew        CrewList     `json:"crew,omitempty"`
	Cast        CastList     `json:"cast,omitempty"`
	Budget      *int64       `json:"budget,omitempty"`
	Status      *string      `json:"status,omitempty"`
	Runtime     *int         `json:"runtime,omitempty"`
	Revenue     *int64       `json:"revenue,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// BeforeCreate hook to assign an id when the caller did not supply one
func (m *Movie) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (Movie) TableName() string {
	return "movies"
}

// Collection groups a movie into a named saga.
type Collection struct {
	Name string `json:"name"`
}

func (c Collection) Value() (driver.Value, error) {
	return jsonValue(c)
}

func (c *Collection) Scan(src any) error {
	return jsonScan(c, src)
}

// Cast is an acting credit.
type Cast struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
	Picture   string `json:"picture,omitempty"`
}

// Crew is a production credit with the job held on the movie.
type Crew struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

// Producer is a producing company credit.
type Producer struct {
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
}
