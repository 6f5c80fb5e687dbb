package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler reports service liveness and database connectivity. It never
// returns a 5xx: a broken database flips the payload to unhealthy instead,
// so diagnostic pollers can keep reading it.
type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Check(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := h.ping(c); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": timestamp,
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": timestamp,
	})
}

func (h *Handler) ping(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Check)
}
