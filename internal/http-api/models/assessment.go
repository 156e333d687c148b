package models

import "time"

// Rating bounds for an assessment.
const (
	RatingMin = 1
	RatingMax = 5
)

// SequenceAssessment names the counter that hands out assessment ids.
const SequenceAssessment = "assessment_sequence"

type Assessment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Rating    *int      `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	User      string    `gorm:"column:user_email;not null;index" json:"user"`
	Movie     string    `gorm:"column:movie_id;not null;index" json:"movie"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Assessment) TableName() string {
	return "assessments"
}
