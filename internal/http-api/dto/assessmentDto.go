package dto

import "cinehub/internal/http-api/models"

// CreateAssessmentDTO for rating a movie. Rating is a pointer so a missing
// field is distinguishable from zero and rejected by validation.
type CreateAssessmentDTO struct {
	ID      int64   `json:"id"`
	Rating  *int    `json:"rating" binding:"required"`
	User    string  `json:"user" binding:"required,email"`
	Movie   string  `json:"movie" binding:"required"`
	Comment *string `json:"comment"`
}

func (d CreateAssessmentDTO) ToModel() *models.Assessment {
	return &models.Assessment{
		ID:      d.ID,
		Rating:  d.Rating,
		User:    d.User,
		Movie:   d.Movie,
		Comment: d.Comment,
	}
}

// UpdateAssessmentDTO for full replacement of the mutable fields.
type UpdateAssessmentDTO struct {
	Rating  *int    `json:"rating" binding:"required"`
	Comment *string `json:"comment"`
}

func (d UpdateAssessmentDTO) ToModel(id int64) *models.Assessment {
	return &models.Assessment{
		ID:      id,
		Rating:  d.Rating,
		Comment: d.Comment,
	}
}
