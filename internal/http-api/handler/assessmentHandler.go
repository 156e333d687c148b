package handler

import (
	"net/http"
	"strconv"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentService service.AssessmentService
}

func NewAssessmentHandler(assessmentService service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// RegisterRoutes registers assessment routes. Mutations are restricted to
// the assessment's author (or an admin).
func (h *AssessmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	assessments := router.Group("/assessments")
	{
		assessments.GET("", h.List)
		assessments.GET("/:id", h.Get)
		assessments.POST("", h.Create)
		assessments.PUT("/:id", h.Replace)
		assessments.PATCH("/:id", h.Patch)
		assessments.DELETE("/:id", h.Delete)
	}
}

func parseAssessmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return 0, false
	}
	return id, true
}

// requireOwner loads the assessment and checks the caller authored it.
func (h *AssessmentHandler) requireOwner(c *gin.Context, id int64) bool {
	assessment, err := h.assessmentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return false
	}
	if assessment.User != middleware.CallerEmail(c) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return false
	}
	return true
}

// List retrieves assessments with pagination and sorting
// GET /assessments?page=0&size=20&sort=-rating
func (h *AssessmentHandler) List(c *gin.Context) {
	page, size, ok := pageParams(c)
	if !ok {
		return
	}
	sortTokens := c.QueryArray("sort")

	assessments, total, err := h.assessmentService.List(c.Request.Context(), page, size, sortTokens, "", "")
	if err != nil {
		respondError(c, err)
		return
	}

	setLinkHeader(c, page, size, total)
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(assessments, page, size, total))
}

// Get retrieves one assessment
// GET /assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := parseAssessmentID(c)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// Create rates a movie as the authenticated user
// POST /assessments
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssessmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.User != middleware.CallerEmail(c) && !middleware.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}

	assessment, err := h.assessmentService.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

// Replace overwrites the assessment's rating and comment
// PUT /assessments/:id
func (h *AssessmentHandler) Replace(c *gin.Context) {
	id, ok := parseAssessmentID(c)
	if !ok {
		return
	}
	if !h.requireOwner(c, id) {
		return
	}

	var req dto.UpdateAssessmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := h.assessmentService.Replace(c.Request.Context(), req.ToModel(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// Patch applies a JSON patch to the assessment
// PATCH /assessments/:id
func (h *AssessmentHandler) Patch(c *gin.Context) {
	id, ok := parseAssessmentID(c)
	if !ok {
		return
	}
	if !h.requireOwner(c, id) {
		return
	}

	var ops []patch.Operation
	if err := c.ShouldBindJSON(&ops); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := h.assessmentService.Patch(c.Request.Context(), id, ops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// Delete removes the assessment
// DELETE /assessments/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
	id, ok := parseAssessmentID(c)
	if !ok {
		return
	}
	if !h.requireOwner(c, id) {
		return
	}

	if err := h.assessmentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
