// Package cli defines the cobra command tree for trailcomments.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trail-comments/internal/app"
	"trail-comments/internal/client"
	"trail-comments/internal/config"
	"trail-comments/internal/feed"
)

var (
	flagFormat string
	flagOrigin string
)

// newService is swapped out in tests.
var newService = defaultService

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trailcomments",
		Short:         "Read and post trail comments",
		Long:          "A client for the trail comments API. Comments are grouped by trail day, the calendar date in Pacific/Auckland.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagOrigin, "origin", "", "comments API origin (default: $COMMENTS_ORIGIN)")

	root.AddCommand(
		newTodayCmd(),
		newListCmd(),
		newPostCmd(),
	)

	return root
}

// defaultService builds a feed service from the environment and the
// --origin flag.
func defaultService() (feed.FeedService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flagOrigin != "" {
		cfg.Origin = flagOrigin
	}

	logger := zap.NewNop()
	c, err := app.NewCommentsClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	return feed.NewFeedService(c, cfg.DefaultLimit, logger), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// describeError turns API failures into a short message for the terminal.
func describeError(err error) error {
	if apiErr, ok := client.AsCommentsAPIError(err); ok {
		return fmt.Errorf("%s (HTTP %d)", apiErr.Message, apiErr.Status)
	}
	return err
}
