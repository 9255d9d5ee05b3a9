package feed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"trail-comments/internal/client"
	"trail-comments/internal/models"
)

// FeedService defines the operations the gateway and CLI run against the
// comments API
type FeedService interface {
	Today(ctx context.Context) string
	ListComments(ctx context.Context, trailID string, limit int) ([]models.Comment, error)
	CreateComment(ctx context.Context, payload any) (models.Comment, error)
}

type feedService struct {
	client       client.CommentsClientInterface
	defaultLimit int
	logger       *zap.Logger
}

func NewFeedService(c client.CommentsClientInterface, defaultLimit int, logger *zap.Logger) FeedService {
	if defaultLimit <= 0 {
		defaultLimit = client.DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &feedService{
		client:       c,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Today returns the current trail day
func (s *feedService) Today(ctx context.Context) string {
	return s.client.TrailID()
}

// ListComments fetches comments for trailID, or for today when it is empty
func (s *feedService) ListComments(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
	startTime := time.Now()

	if trailID == "" {
		trailID = s.client.TrailID()
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	comments, err := s.client.ListComments(ctx, trailID, client.WithLimit(limit))
	if err != nil {
		s.logger.Warn("list comments failed",
			zap.String("trail_id", trailID),
			zap.Int("limit", limit),
			zap.Error(err))
		return nil, fmt.Errorf("list comments for %s: %w", trailID, err)
	}

	s.logger.Debug("listed comments",
		zap.String("trail_id", trailID),
		zap.Int("count", len(comments)),
		zap.Duration("elapsed", time.Since(startTime)))

	return comments, nil
}

// CreateComment forwards payload to the comments API
func (s *feedService) CreateComment(ctx context.Context, payload any) (models.Comment, error) {
	if nc, ok := payload.(models.NewComment); ok && nc.TrailID == "" {
		nc.TrailID = s.client.TrailID()
		payload = nc
	}

	created, err := s.client.CreateComment(ctx, payload)
	if err != nil {
		s.logger.Warn("create comment failed", zap.Error(err))
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.Info("created comment", zap.Int("bytes", len(created)))
	return created, nil
}
