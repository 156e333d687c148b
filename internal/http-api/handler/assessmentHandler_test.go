package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinehub/internal/http-api/handler"
	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(i int) *int { return &i }

func setupAssessmentRouter(assessSvc *MockAssessmentService, callerEmail string, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAssessmentHandler(assessSvc)

	authed := r.Group("", mockAuth(callerEmail, roles...))
	h.RegisterRoutes(authed)
	return r
}

func TestAssessmentHandler_Create(t *testing.T) {
	t.Run("AsSelf", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "ana@example.com")

		created := &models.Assessment{ID: 1, Rating: intPtr(4), User: "ana@example.com", Movie: "m-1"}
		assessSvc.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.User == "ana@example.com" && a.Movie == "m-1" && *a.Rating == 4
		})).Return(created, nil).Once()

		body := `{"rating":4,"user":"ana@example.com","movie":"m-1"}`
		req, _ := http.NewRequest(http.MethodPost, "/assessments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assessSvc.AssertExpectations(t)
	})

	t.Run("ForSomeoneElse", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "eve@example.com")

		body := `{"rating":4,"user":"ana@example.com","movie":"m-1"}`
		req, _ := http.NewRequest(http.MethodPost, "/assessments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assessSvc.AssertNotCalled(t, "Create")
	})

	t.Run("UnresolvedReference", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "ana@example.com")

		assessSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrValidation).Once()

		body := `{"rating":4,"user":"ana@example.com","movie":"no-such-movie"}`
		req, _ := http.NewRequest(http.MethodPost, "/assessments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAssessmentHandler_Patch(t *testing.T) {
	t.Run("Owner", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "ana@example.com")

		stored := &models.Assessment{ID: 1, Rating: intPtr(3), User: "ana@example.com", Movie: "m-1"}
		patched := &models.Assessment{ID: 1, Rating: intPtr(5), User: "ana@example.com", Movie: "m-1"}
		assessSvc.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()
		assessSvc.On("Patch", mock.Anything, int64(1), mock.Anything).Return(patched, nil).Once()

		body := `[{"op":"replace","path":"/rating","value":5}]`
		req, _ := http.NewRequest(http.MethodPatch, "/assessments/1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assessSvc.AssertExpectations(t)
	})

	t.Run("NotOwner", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "eve@example.com")

		stored := &models.Assessment{ID: 1, Rating: intPtr(3), User: "ana@example.com", Movie: "m-1"}
		assessSvc.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()

		body := `[{"op":"replace","path":"/rating","value":5}]`
		req, _ := http.NewRequest(http.MethodPatch, "/assessments/1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assessSvc.AssertNotCalled(t, "Patch")
	})

	t.Run("BadID", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "ana@example.com")

		body := `[{"op":"replace","path":"/rating","value":5}]`
		req, _ := http.NewRequest(http.MethodPatch, "/assessments/abc", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssessmentHandler_Delete(t *testing.T) {
	t.Run("AdminMayDeleteAny", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "root@example.com", "admin")

		stored := &models.Assessment{ID: 1, Rating: intPtr(3), User: "ana@example.com", Movie: "m-1"}
		assessSvc.On("Get", mock.Anything, int64(1)).Return(stored, nil).Once()
		assessSvc.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/assessments/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assessSvc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		assessSvc := new(MockAssessmentService)
		r := setupAssessmentRouter(assessSvc, "ana@example.com")

		assessSvc.On("Get", mock.Anything, int64(99)).Return(nil, service.ErrNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/assessments/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
