package handler

import (
	"net/http"
	"strconv"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService      service.MovieService
	assessmentService service.AssessmentService
}

func NewMovieHandler(movieService service.MovieService, assessmentService service.AssessmentService) *MovieHandler {
	return &MovieHandler{
		movieService:      movieService,
		assessmentService: assessmentService,
	}
}

// RegisterRoutes registers movie routes plus the assessments sub-resource.
// Catalog writes are admin-only.
func (h *MovieHandler) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.GET("", h.List)
		movies.GET("/:id", h.Get)
		movies.POST("", middleware.RequireAdmin(), h.Create)
		movies.PUT("/:id", middleware.RequireAdmin(), h.Replace)
		movies.PATCH("/:id", middleware.RequireAdmin(), h.Patch)
		movies.DELETE("/:id", middleware.RequireAdmin(), h.Delete)

		movies.GET("/:id/assessments", h.ListAssessments)
	}
}

// List retrieves movies with pagination, sorting and the optional filters
// GET /movies?page=0&size=20&sort=-releaseDate.year&title=&genre=&keyword=&status=&releaseyear=
func (h *MovieHandler) List(c *gin.Context) {
	page, size, ok := pageParams(c)
	if !ok {
		return
	}
	sortTokens := c.QueryArray("sort")

	filters := service.MovieFilters{
		Title:    c.Query("title"),
		Genres:   c.QueryArray("genre"),
		Keywords: c.QueryArray("keyword"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("releaseyear"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid release year"})
			return
		}
		filters.ReleaseYear = &year
	}

	movies, total, err := h.movieService.List(c.Request.Context(), page, size, sortTokens, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	setLinkHeader(c, page, size, total)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(movies, page, size, total))
}

// Get retrieves one movie
// GET /movies/:id
func (h *MovieHandler) Get(c *gin.Context) {
	movie, err := h.movieService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Create adds a movie to the catalog
// POST /movies
func (h *MovieHandler) Create(c *gin.Context) {
	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.movieService.Create(c.Request.Context(), &movie)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Replace overwrites the movie's attributes
// PUT /movies/:id
func (h *MovieHandler) Replace(c *gin.Context) {
	var movie models.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	movie.ID = c.Param("id")

	updated, err := h.movieService.Replace(c.Request.Context(), &movie)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Patch applies a JSON patch to the movie
// PATCH /movies/:id
func (h *MovieHandler) Patch(c *gin.Context) {
	var ops []patch.Operation
	if err := c.ShouldBindJSON(&ops); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieService.Patch(c.Request.Context(), c.Param("id"), ops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Delete removes the movie. Assessments referencing it are kept.
// DELETE /movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	if err := h.movieService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAssessments retrieves the movie's assessments
// GET /movies/:id/assessments
func (h *MovieHandler) ListAssessments(c *gin.Context) {
	page, size, ok := pageParams(c)
	if !ok {
		return
	}
	sortTokens := c.QueryArray("sort")

	assessments, total, err := h.assessmentService.List(c.Request.Context(), page, size, sortTokens,
		"", c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	setLinkHeader(c, page, size, total)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(assessments, page, size, total))
}
