package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/query"
	"cinehub/internal/http-api/repository"

	"gorm.io/gorm"
)

// MovieFilters carries the optional listing parameters for movies. Zero
// values mean "no constraint".
type MovieFilters struct {
	Title       string
	Genres      []string
	Keywords    []string
	Status      string
	ReleaseYear *int
}

type MovieService interface {
	List(ctx context.Context, page, size int, sortTokens []string, filters MovieFilters) ([]models.Movie, int64, error)
	Get(ctx context.Context, id string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Replace(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Patch(ctx context.Context, id string, ops []patch.Operation) (*models.Movie, error)
	Delete(ctx context.Context, id string) error
}

type movieService struct {
	movieRepo repository.MovieRepository
	cache     *repository.MovieCache
}

func NewMovieService(movieRepo repository.MovieRepository, cache *repository.MovieCache) MovieService {
	return &movieService{movieRepo: movieRepo, cache: cache}
}

// List retrieves a page of movies matching the filters: strings by
// case-insensitive containment, the release year exactly. An empty page
// surfaces as ErrNotFound.
func (s *movieService) List(ctx context.Context, page, size int, sortTokens []string, filters MovieFilters) ([]models.Movie, int64, error) {
	filter := query.NewFilter().
		Contains("title", filters.Title).
		ContainsEach("genres", filters.Genres).
		ContainsEach("keywords", filters.Keywords).
		Contains("status", filters.Status)
	if filters.ReleaseYear != nil {
		filter.Equals("release_year", *filters.ReleaseYear)
	}
	orders := query.ParseSort(sortTokens)

	movies, total, err := s.movieRepo.List(ctx, filter, orders, page, size)
	if err != nil {
		return nil, 0, err
	}
	if len(movies) == 0 {
		return nil, 0, ErrNotFound
	}
	return movies, total, nil
}

func (s *movieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	if cached := s.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.cache.Set(ctx, movie)
	return movie, nil
}

// Create inserts a new movie. The id is caller-supplied or generated; an
// existing id is a conflict.
func (s *movieService) Create(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if strings.TrimSpace(movie.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: movie %s already exists", ErrConflict, movie.ID)
		}
		return nil, err
	}
	return movie, nil
}

// Replace overwrites the stored movie's attributes with the supplied ones,
// keeping the identity.
func (s *movieService) Replace(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	stored, err := s.movieRepo.GetByID(ctx, movie.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(movie.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	movie.ID = stored.ID
	movie.CreatedAt = stored.CreatedAt
	if err := s.movieRepo.Save(ctx, movie); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, movie.ID)
	return movie, nil
}

// Patch runs the partial-update pipeline against the stored movie.
func (s *movieService) Patch(ctx context.Context, id string, ops []patch.Operation) (*models.Movie, error) {
	stored, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := patch.Guard(ops, patch.MovieProtected...); err != nil {
		return nil, err
	}

	edit := *stored
	if err := patch.ApplyMovie(&edit, ops); err != nil {
		return nil, err
	}

	if strings.TrimSpace(edit.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if err := s.movieRepo.Save(ctx, &edit); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return &edit, nil
}

func (s *movieService) Delete(ctx context.Context, id string) error {
	if err := s.movieRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}
