// internal/handler/http/comments_handler.go
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"trail-comments/internal/client"
	"trail-comments/internal/feed"
	"trail-comments/internal/models"
)

type CommentsHandler struct {
	svc feed.FeedService
}

func NewCommentsHandler(svc feed.FeedService) *CommentsHandler {
	return &CommentsHandler{svc: svc}
}

// ListComments godoc
// @Summary List comments for a trail day
// @Description Fetches comments for the given trail day from the comments API. Defaults to today in Pacific/Auckland.
// @Tags comments
// @Produce json
// @Param trailId query string false "Trail day (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of comments to retrieve"
// @Success 200 {object} models.CommentsResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /trail/comments [get]
func (h *CommentsHandler) ListComments(c echo.Context) error {
	trailID := c.QueryParam("trailId")

	var limit int
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `limit`")
		}
		limit = v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	if trailID == "" {
		trailID = h.svc.Today(ctx)
	}

	startTime := time.Now()

	comments, err := h.svc.ListComments(ctx, trailID, limit)
	if err != nil {
		return upstreamError(err)
	}

	resp := models.CommentsResponse{Comments: comments}
	resp.Meta.TrailID = trailID
	resp.Meta.RequestedLimit = limit
	resp.Meta.ActualCount = len(comments)
	resp.Meta.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return c.JSON(http.StatusOK, resp)
}

// CreateComment godoc
// @Summary Create a comment
// @Description Forwards the JSON body to the comments API and returns the created record.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body models.NewComment true "Comment payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /trail/comments [post]
func (h *CommentsHandler) CreateComment(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read body")
	}
	if !json.Valid(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be valid JSON")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	created, err := h.svc.CreateComment(ctx, json.RawMessage(body))
	if err != nil {
		return upstreamError(err)
	}

	return c.JSONBlob(http.StatusCreated, created)
}

// upstreamError passes 4xx answers of the comments API through and reports
// everything else as a bad gateway.
func upstreamError(err error) error {
	if apiErr, ok := client.AsCommentsAPIError(err); ok {
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return echo.NewHTTPError(apiErr.Status, apiErr.Message)
		}
		return echo.NewHTTPError(http.StatusBadGateway, apiErr.Message)
	}
	return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("comments api error: %v", err))
}
