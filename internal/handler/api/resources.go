package api

import (
	"net/http"
	"os"

	"hotel-concierge/internal/handler/httperr"
	"hotel-concierge/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the UI resources the tool envelopes reference: the
// reservation widget template and the raw reservations data.
type ResourceHandler struct {
	cfg config.WidgetConfig
}

func NewResourceHandler(cfg config.Config) *ResourceHandler {
	return &ResourceHandler{cfg: cfg.Widget}
}

// @Summary Reservation widget template
// @Tags resources
// @Produce html
// @Success 200 {string} string
// @Router /widget [get]
func (h *ResourceHandler) Widget(c *gin.Context) {
	if _, err := os.Stat(h.cfg.TemplatePath); err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Widget template not found", nil)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.File(h.cfg.TemplatePath)
}

// @Summary Seed reservation data resource
// @Tags resources
// @Produce json
// @Success 200 {string} string
// @Router /reservations.json [get]
func (h *ResourceHandler) ReservationsData(c *gin.Context) {
	if _, err := os.Stat(h.cfg.DataPath); err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation data not found", nil)
		return
	}
	c.Header("Content-Type", "application/json")
	c.File(h.cfg.DataPath)
}
