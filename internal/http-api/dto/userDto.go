package dto

import "cinehub/internal/http-api/models"

// CreateUserDTO for registering a user. The password rides in the request
// only; the model never serializes it back.
type CreateUserDTO struct {
	Email    string      `json:"email" binding:"required,email"`
	Name     string      `json:"name" binding:"required"`
	Password string      `json:"password" binding:"required,min=8"`
	Country  *string     `json:"country"`
	Picture  *string     `json:"picture"`
	Birthday models.Date `json:"birthday"`
	Roles    []string    `json:"roles"`
}

func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:    d.Email,
		Name:     d.Name,
		Password: d.Password,
		Country:  d.Country,
		Picture:  d.Picture,
		Birthday: d.Birthday,
		Roles:    models.StringList(d.Roles),
	}
}

// UpdateUserDTO for full profile replacement.
type UpdateUserDTO struct {
	Name     string      `json:"name" binding:"required"`
	Country  *string     `json:"country"`
	Picture  *string     `json:"picture"`
	Birthday models.Date `json:"birthday"`
}

func (d UpdateUserDTO) ToModel(email string) *models.User {
	return &models.User{
		Email:    email,
		Name:     d.Name,
		Country:  d.Country,
		Picture:  d.Picture,
		Birthday: d.Birthday,
	}
}
