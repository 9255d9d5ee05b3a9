package mocks

import (
	"context"
	"time"

	"trail-comments/internal/client"
	"trail-comments/internal/models"
)

type MockCommentsClient struct {
	TrailIDFunc        func(t ...time.Time) string
	ListCommentsFunc   func(ctx context.Context, trailID string, opts ...client.ListOption) ([]models.Comment, error)
	CreateCommentFunc  func(ctx context.Context, payload any) (models.Comment, error)
	GetCommentsURLFunc func(trailID string, limit int) string
}

func (m *MockCommentsClient) TrailID(t ...time.Time) string {
	return m.TrailIDFunc(t...)
}

func (m *MockCommentsClient) ListComments(ctx context.Context, trailID string, opts ...client.ListOption) ([]models.Comment, error) {
	return m.ListCommentsFunc(ctx, trailID, opts...)
}

func (m *MockCommentsClient) CreateComment(ctx context.Context, payload any) (models.Comment, error) {
	return m.CreateCommentFunc(ctx, payload)
}

func (m *MockCommentsClient) GetCommentsURL(trailID string, limit int) string {
	return m.GetCommentsURLFunc(trailID, limit)
}
