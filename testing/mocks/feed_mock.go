package mocks

import (
	"context"

	"trail-comments/internal/models"
)

type MockFeedService struct {
	TodayFunc         func(ctx context.Context) string
	ListCommentsFunc  func(ctx context.Context, trailID string, limit int) ([]models.Comment, error)
	CreateCommentFunc func(ctx context.Context, payload any) (models.Comment, error)
}

func (m *MockFeedService) Today(ctx context.Context) string {
	return m.TodayFunc(ctx)
}

func (m *MockFeedService) ListComments(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
	return m.ListCommentsFunc(ctx, trailID, limit)
}

func (m *MockFeedService) CreateComment(ctx context.Context, payload any) (models.Comment, error) {
	return m.CreateCommentFunc(ctx, payload)
}
