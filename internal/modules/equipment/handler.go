package equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lubritrack/internal/pkg/response"
	"lubritrack/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/equipos?skip=&limit=
func (h *Handler) List(c *gin.Context) {
	skip := 0
	if v := c.Query("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 100 {
			limit = n
		}
	}

	equipos, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Detail(c, http.StatusInternalServerError, "Error al listar equipos")
		return
	}

	c.JSON(http.StatusOK, equipos)
}

// Get handles GET /api/equipos/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "ID de equipo inválido")
		return
	}

	equipo, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Detail(c, http.StatusNotFound, "Equipo no encontrado")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Error al obtener equipo")
		return
	}

	c.JSON(http.StatusOK, equipo)
}

// Create handles POST /api/equipos
func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.Detail(c, http.StatusBadRequest, validator.Describe(fields))
		return
	}

	equipo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCriticality) {
			response.Detail(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Detail(c, http.StatusBadRequest, "Error al crear equipo: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, equipo)
}

// Update handles PUT /api/equipos/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "ID de equipo inválido")
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.Detail(c, http.StatusBadRequest, validator.Describe(fields))
		return
	}

	equipo, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Detail(c, http.StatusNotFound, "Equipo no encontrado")
		case errors.Is(err, ErrInvalidCriticality), errors.Is(err, ErrInvalidStatus):
			response.Detail(c, http.StatusBadRequest, err.Error())
		default:
			response.Detail(c, http.StatusInternalServerError, "Error al actualizar equipo")
		}
		return
	}

	c.JSON(http.StatusOK, equipo)
}

// Deactivate handles DELETE /api/equipos/:id. The verb is DELETE on the wire
// but the semantics are a soft deactivation.
func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "ID de equipo inválido")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Detail(c, http.StatusNotFound, "Equipo no encontrado")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Error al desactivar equipo")
		return
	}

	response.Message(c, http.StatusOK, "Equipo desactivado")
}

// History handles GET /api/equipos/:id/historial
func (h *Handler) History(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "ID de equipo inválido")
		return
	}

	entries, err := h.service.History(c.Request.Context(), id, 100)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Detail(c, http.StatusNotFound, "Equipo no encontrado")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Error al obtener historial")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RegisterRoutes mounts the equipment endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	equipos := r.Group("/equipos")
	{
		equipos.GET("", h.List)
		equipos.GET("/:id", h.Get)
		equipos.POST("", h.Create)
		equipos.PUT("/:id", h.Update)
		equipos.DELETE("/:id", h.Deactivate)
		equipos.GET("/:id/historial", h.History)
	}
}
