package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-comments/internal/client"
	"trail-comments/internal/feed"
	"trail-comments/internal/models"
	"trail-comments/testing/mocks"
)

func withService(t *testing.T, svc feed.FeedService) {
	t.Helper()
	orig := newService
	newService = func() (feed.FeedService, error) { return svc, nil }
	t.Cleanup(func() { newService = orig })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestTodayCmd(t *testing.T) {
	out, err := execute(t, "today", "--date", "2024-01-01T11:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02\n", out)

	out, err = execute(t, "--format", "json", "today", "--date", "2024-07-01T11:00:00Z")
	require.NoError(t, err)
	assert.JSONEq(t, `{"trailId":"2024-07-01"}`, out)

	_, err = execute(t, "today", "--date", "yesterday")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	var gotTrail string
	var gotLimit int
	withService(t, &mocks.MockFeedService{
		TodayFunc: func(ctx context.Context) string { return "2024-01-02" },
		ListCommentsFunc: func(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
			gotTrail, gotLimit = trailID, limit
			return []models.Comment{
				json.RawMessage(`{"id":1,"author":"kea","text":"Muddy after the rain"}`),
				json.RawMessage(`{"id":2}`),
			}, nil
		},
	})

	out, err := execute(t, "list", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", gotTrail)
	assert.Equal(t, 5, gotLimit)
	assert.Contains(t, out, "Comments for 2024-01-02:")
	assert.Contains(t, out, "kea: Muddy after the rain")
	assert.Contains(t, out, `{"id":2}`)

	out, err = execute(t, "--format", "json", "list", "--trail", "2023-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-25", gotTrail)
	assert.JSONEq(t, `[{"id":1,"author":"kea","text":"Muddy after the rain"},{"id":2}]`, out)
}

func TestListCmdEmpty(t *testing.T) {
	withService(t, &mocks.MockFeedService{
		TodayFunc: func(ctx context.Context) string { return "2024-01-02" },
		ListCommentsFunc: func(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
			return []models.Comment{}, nil
		},
	})

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "No comments for 2024-01-02.\n", out)
}

func TestListCmdAPIError(t *testing.T) {
	withService(t, &mocks.MockFeedService{
		TodayFunc: func(ctx context.Context) string { return "2024-01-02" },
		ListCommentsFunc: func(ctx context.Context, trailID string, limit int) ([]models.Comment, error) {
			return nil, client.NewCommentsAPIError(client.MsgLoadFailed, 503)
		},
	})

	_, err := execute(t, "list")
	require.Error(t, err)
	assert.Equal(t, "Failed to load comments (HTTP 503)", err.Error())
}

func TestPostCmd(t *testing.T) {
	var got any
	withService(t, &mocks.MockFeedService{
		CreateCommentFunc: func(ctx context.Context, payload any) (models.Comment, error) {
			got = payload
			return json.RawMessage(`{"id":7,"author":"tui","text":"Great views"}`), nil
		},
	})

	out, err := execute(t, "post", "--author", "tui", "--trail", "2024-03-03", "Great", "views")
	require.NoError(t, err)
	assert.Equal(t, models.NewComment{TrailID: "2024-03-03", Text: "Great views", Author: "tui"}, got)
	assert.Equal(t, "  tui: Great views\n", out)
}

func TestPostCmdRequiresText(t *testing.T) {
	withService(t, &mocks.MockFeedService{})

	_, err := execute(t, "post")
	assert.Error(t, err)

	_, err = execute(t, "post", "  ")
	assert.Error(t, err)
}
