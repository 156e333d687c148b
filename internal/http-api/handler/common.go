package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/query"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// pageParams reads the page/size query parameters with their defaults.
// page is 0-based. Non-numeric values get a 400 response; callers must stop
// when ok is false because the response has already been written.
func pageParams(c *gin.Context) (page, size int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
		return 0, 0, false
	}

	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size, true
}

// setLinkHeader attaches the pagination relation links for the current
// request as a Link response header.
func setLinkHeader(c *gin.Context, page, size int, total int64) {
	links := query.BuildPageLinks(c.Request.URL.Path, c.Request.URL.Query(), page, size, total)
	c.Header("Link", links.Header())
}

// respondError translates the service and patch error taxonomy into HTTP.
// Anything outside the taxonomy collapses to a generic bad request so no
// unstructured failure reaches the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, patch.ErrEmptyPatch),
		errors.Is(err, patch.ErrProtectedPath):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, patch.ErrUnknownOp),
		errors.Is(err, patch.ErrUnknownPath),
		errors.Is(err, patch.ErrPathNotFound),
		errors.Is(err, patch.ErrInvalidValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
	}
}
