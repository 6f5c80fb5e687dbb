package lubrication

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lubritrack/internal/pkg/response"
	"lubritrack/internal/pkg/validator"
	"lubritrack/internal/skf"
)

type Handler struct {
	service           *Service
	defaultWindowDays int
}

func NewHandler(service *Service, defaultWindowDays int) *Handler {
	if defaultWindowDays < 1 {
		defaultWindowDays = 7
	}
	return &Handler{service: service, defaultWindowDays: defaultWindowDays}
}

// UpcomingPlans handles GET /api/lubricacion/planes/proximos?dias=N
func (h *Handler) UpcomingPlans(c *gin.Context) {
	dias := h.defaultWindowDays
	if v := c.Query("dias"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 30 {
			response.Detail(c, http.StatusBadRequest, "El parámetro dias debe estar entre 1 y 30")
			return
		}
		dias = n
	}

	planes, err := h.service.UpcomingPlans(c.Request.Context(), dias)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Error al obtener planes próximos")
		return
	}

	c.JSON(http.StatusOK, planes)
}

// RecordExecution handles POST /api/lubricacion/ejecutar/:plan_id
func (h *Handler) RecordExecution(c *gin.Context) {
	planID, err := strconv.ParseInt(c.Param("plan_id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "ID de plan inválido")
		return
	}

	var req RecordExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.Detail(c, http.StatusBadRequest, validator.Describe(fields))
		return
	}

	entry, err := h.service.RecordExecution(c.Request.Context(), planID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			response.Detail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrTechnicianRequired), errors.Is(err, ErrInvalidQuantity):
			response.Detail(c, http.StatusBadRequest, err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Error al registrar lubricación")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// History handles GET /api/lubricacion/historial?plan_id=&limit=
func (h *Handler) History(c *gin.Context) {
	var planID *int64
	if v := c.Query("plan_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Detail(c, http.StatusBadRequest, "plan_id inválido")
			return
		}
		planID = &id
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.service.History(c.Request.Context(), planID, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Error al obtener historial")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CalculateSKF handles GET /api/lubricacion/calcular-skf?diametro_mm=&ancho_mm=
func (h *Handler) CalculateSKF(c *gin.Context) {
	diameter, err1 := strconv.ParseFloat(c.Query("diametro_mm"), 64)
	width, err2 := strconv.ParseFloat(c.Query("ancho_mm"), 64)
	if err1 != nil || err2 != nil {
		response.Detail(c, http.StatusBadRequest, "diametro_mm y ancho_mm son obligatorios y numéricos")
		return
	}

	result, err := h.service.CalculateSKF(diameter, width)
	if err != nil {
		if errors.Is(err, skf.ErrInvalidArgument) {
			response.Detail(c, http.StatusBadRequest, "diametro_mm y ancho_mm deben ser mayores que cero")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Error al calcular cantidad SKF")
		return
	}

	result.QuantityGrams = skf.Round2(result.QuantityGrams)
	c.JSON(http.StatusOK, result)
}

// RegisterRoutes mounts the lubrication endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	lub := r.Group("/lubricacion")
	{
		lub.GET("/planes/proximos", h.UpcomingPlans)
		lub.POST("/ejecutar/:plan_id", h.RecordExecution)
		lub.GET("/historial", h.History)
		lub.GET("/calcular-skf", h.CalculateSKF)
	}
}
