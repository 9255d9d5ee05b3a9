// internal/handler/http/trail_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"trail-comments/internal/feed"
	"trail-comments/internal/models"
)

type TrailHandler struct {
	svc feed.FeedService
}

func NewTrailHandler(svc feed.FeedService) *TrailHandler {
	return &TrailHandler{svc: svc}
}

// GetToday godoc
// @Summary Get today's trail day
// @Description Returns the current calendar day in Pacific/Auckland as YYYY-MM-DD
// @Tags trail
// @Produce json
// @Success 200 {object} models.TrailResponse
// @Router /trail/today [get]
func (h *TrailHandler) GetToday(c echo.Context) error {
	return c.JSON(http.StatusOK, models.TrailResponse{
		TrailID: h.svc.Today(c.Request().Context()),
	})
}
