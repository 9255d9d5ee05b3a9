// internal/client/interface.go
package client

import (
	"context"
	"net/http"
	"time"

	"trail-comments/internal/models"
)

type CommentsClientInterface interface {
	TrailID(t ...time.Time) string
	ListComments(ctx context.Context, trailID string, opts ...ListOption) ([]models.Comment, error)
	CreateComment(ctx context.Context, payload any) (models.Comment, error)
	GetCommentsURL(trailID string, limit int) string
}

// HTTPDoer is the transport the client sends requests through.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Clock reports the current instant.
type Clock func() time.Time
