package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-comments/internal/client"
	handler "trail-comments/internal/handler/http"
	"trail-comments/internal/models"
	"trail-comments/testing/mocks"
)

func newMockService() *mocks.MockFeedService {
	return &mocks.MockFeedService{
		TodayFunc: func(ctx context.Context) string { return "2024-01-02" },
	}
}

func TestGetToday(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/trail/today", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler.NewTrailHandler(newMockService())
	require.NoError(t, h.GetToday(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"trailId":"2024-01-02"}`, rec.Body.String())
}

func TestListCommentsHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/trail/comments?limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := newMockService()
	var gotTrail string
	var gotLimit int
	svc.ListCommentsFunc = func(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
		gotTrail, gotLimit = trailID, limit
		return []models.Comment{json.RawMessage(`{"id":1}`)}, nil
	}

	h := handler.NewCommentsHandler(svc)
	require.NoError(t, h.ListComments(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-01-02", gotTrail)
	assert.Equal(t, 10, gotLimit)

	var response models.CommentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Comments, 1)
	assert.JSONEq(t, `{"id":1}`, string(response.Comments[0]))
	assert.Equal(t, "2024-01-02", response.Meta.TrailID)
	assert.Equal(t, 1, response.Meta.ActualCount)
}

func TestListCommentsHandlerInvalidLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/trail/comments?limit=lots", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler.NewCommentsHandler(newMockService())
	err := h.ListComments(c)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestListCommentsHandlerUpstreamErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"upstream not found", client.NewCommentsAPIError(client.MsgLoadFailed, 404), http.StatusNotFound},
		{"upstream server error", client.NewCommentsAPIError(client.MsgLoadFailed, 500), http.StatusBadGateway},
		{"unexpected response", client.NewCommentsAPIError(client.MsgUnexpectedResponse, 200), http.StatusBadGateway},
		{"transport error", errors.New("dial tcp: connection refused"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/trail/comments?trailId=2024-01-01", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			svc := newMockService()
			svc.ListCommentsFunc = func(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
				assert.Equal(t, "2024-01-01", trailID)
				return nil, tt.err
			}

			h := handler.NewCommentsHandler(svc)
			err := h.ListComments(c)

			var httpErr *echo.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestCreateCommentHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/trail/comments", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := newMockService()
	svc.CreateCommentFunc = func(ctx context.Context, payload any) (models.Comment, error) {
		raw, ok := payload.(json.RawMessage)
		assert.True(t, ok)
		assert.JSONEq(t, `{"text":"hi"}`, string(raw))
		return json.RawMessage(`{"id":7,"text":"hi"}`), nil
	}

	h := handler.NewCommentsHandler(svc)
	require.NoError(t, h.CreateComment(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7,"text":"hi"}`, rec.Body.String())
}

func TestCreateCommentHandlerInvalidBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/trail/comments", strings.NewReader(`{"text":`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := handler.NewCommentsHandler(newMockService())
	err := h.CreateComment(c)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
