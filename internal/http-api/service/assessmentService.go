package service

import (
	"context"
	"errors"
	"fmt"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/query"
	"cinehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type AssessmentService interface {
	// List scopes itself to a user and/or movie when the corresponding
	// argument is non-empty (sub-resource listings).
	List(ctx context.Context, page, size int, sortTokens []string, userEmail, movieID string) ([]models.Assessment, int64, error)
	Get(ctx context.Context, id int64) (*models.Assessment, error)
	Create(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error)
	Replace(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error)
	Patch(ctx context.Context, id int64, ops []patch.Operation) (*models.Assessment, error)
	Delete(ctx context.Context, id int64) error
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	userRepo       repository.UserRepository
	movieRepo      repository.MovieRepository
	sequences      repository.SequenceRepository
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	sequences repository.SequenceRepository,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		movieRepo:      movieRepo,
		sequences:      sequences,
	}
}

func (s *assessmentService) List(ctx context.Context, page, size int, sortTokens []string, userEmail, movieID string) ([]models.Assessment, int64, error) {
	filter := query.NewFilter()
	if userEmail != "" {
		filter.Equals("user_email", userEmail)
	}
	if movieID != "" {
		filter.Equals("movie_id", movieID)
	}
	orders := query.ParseSort(sortTokens)

	assessments, total, err := s.assessmentRepo.List(ctx, filter, orders, page, size)
	if err != nil {
		return nil, 0, err
	}
	if len(assessments) == 0 {
		return nil, 0, ErrNotFound
	}
	return assessments, total, nil
}

func (s *assessmentService) Get(ctx context.Context, id int64) (*models.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return assessment, nil
}

// Create validates the rating bounds and that both referenced entities
// resolve; an unresolved reference is a validation failure, never a silent
// null. Without a caller-supplied id the sequence counter assigns one.
func (s *assessmentService) Create(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	if err := validateRating(assessment.Rating); err != nil {
		return nil, err
	}
	if assessment.User == "" || assessment.Movie == "" {
		return nil, fmt.Errorf("%w: user and movie references are required", ErrValidation)
	}

	if _, err := s.userRepo.GetByEmail(ctx, assessment.User); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s does not exist", ErrValidation, assessment.User)
		}
		return nil, err
	}
	if _, err := s.movieRepo.GetByID(ctx, assessment.Movie); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: movie %s does not exist", ErrValidation, assessment.Movie)
		}
		return nil, err
	}

	if assessment.ID < 1 {
		id, err := s.sequences.Next(ctx, models.SequenceAssessment)
		if err != nil {
			return nil, err
		}
		assessment.ID = id
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: assessment %d already exists", ErrConflict, assessment.ID)
		}
		return nil, err
	}
	return assessment, nil
}

// Replace overwrites rating and comment on the stored assessment. The user
// and movie references stay as created.
func (s *assessmentService) Replace(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	stored, err := s.assessmentRepo.GetByID(ctx, assessment.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := validateRating(assessment.Rating); err != nil {
		return nil, err
	}

	stored.Rating = assessment.Rating
	stored.Comment = assessment.Comment

	if err := s.assessmentRepo.Save(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Patch runs the partial-update pipeline; the rating bounds are re-checked
// after the whole patch has applied, so an out-of-range replace rejects the
// request with nothing persisted.
func (s *assessmentService) Patch(ctx context.Context, id int64, ops []patch.Operation) (*models.Assessment, error) {
	stored, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := patch.Guard(ops, patch.AssessmentProtected...); err != nil {
		return nil, err
	}

	edit := *stored
	if err := patch.ApplyAssessment(&edit, ops); err != nil {
		return nil, err
	}

	if err := validateRating(edit.Rating); err != nil {
		return nil, err
	}

	if err := s.assessmentRepo.Save(ctx, &edit); err != nil {
		return nil, err
	}
	return &edit, nil
}

func (s *assessmentService) Delete(ctx context.Context, id int64) error {
	if err := s.assessmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateRating(rating *int) error {
	if rating == nil {
		return fmt.Errorf("%w: rating is required", ErrValidation)
	}
	if *rating < models.RatingMin || *rating > models.RatingMax {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, models.RatingMin, models.RatingMax)
	}
	return nil
}
