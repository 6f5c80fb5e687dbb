package lubrication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lubritrack/internal/domain"
)

func setupRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(service, 7).RegisterRoutes(api)
	return r
}

func TestHandler_CalculateSKF(t *testing.T) {
	r := setupRouter(newTestService(new(MockPlanRepository), new(MockHistoryRepository), time.Now()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lubricacion/calcular-skf?diametro_mm=52&ancho_mm=15", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3.9, body["cantidad_gramos"])
	assert.Equal(t, 52.0, body["diametro_mm"])
	assert.Equal(t, "G = 0.005 × D × B", body["formula"])
}

func TestHandler_CalculateSKF_RejectsNonPositive(t *testing.T) {
	r := setupRouter(newTestService(new(MockPlanRepository), new(MockHistoryRepository), time.Now()))

	for _, q := range []string{
		"diametro_mm=0&ancho_mm=15",
		"diametro_mm=-1&ancho_mm=15",
		"diametro_mm=52&ancho_mm=abc",
		"diametro_mm=52",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/lubricacion/calcular-skf?"+q, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, q)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["detail"], q)
	}
}

func TestHandler_UpcomingPlans_BadWindow(t *testing.T) {
	r := setupRouter(newTestService(new(MockPlanRepository), new(MockHistoryRepository), time.Now()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lubricacion/planes/proximos?dias=99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpcomingPlans_DefaultWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	plans := new(MockPlanRepository)
	plans.On("DueBefore", mock.Anything, now.AddDate(0, 0, 7)).Return([]domain.LubricationPlan{}, nil)

	r := setupRouter(newTestService(plans, new(MockHistoryRepository), now))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lubricacion/planes/proximos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	plans.AssertExpectations(t)
}

func TestHandler_RecordExecution_PlanNotFound(t *testing.T) {
	plans := new(MockPlanRepository)
	plans.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	r := setupRouter(newTestService(plans, new(MockHistoryRepository), time.Now()))

	body := strings.NewReader(`{"cantidad_aplicada": 5, "tecnico": "J. Pérez"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lubricacion/ejecutar/77", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RecordExecution_ValidationError(t *testing.T) {
	r := setupRouter(newTestService(new(MockPlanRepository), new(MockHistoryRepository), time.Now()))

	body := strings.NewReader(`{"cantidad_aplicada": -2, "tecnico": "J. Pérez"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lubricacion/ejecutar/1", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["detail"])
}
