package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trail-comments/internal/models"
)

func newPostCmd() *cobra.Command {
	var (
		trailID string
		author  string
	)

	cmd := &cobra.Command{
		Use:   `post "text"`,
		Short: "Post a comment",
		Long:  "Post a comment to a trail day. Defaults to today.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("comment text is required")
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			created, err := svc.CreateComment(cmd.Context(), models.NewComment{
				TrailID: trailID,
				Text:    text,
				Author:  author,
			})
			if err != nil {
				return describeError(err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), created)
			}
			return printComment(cmd.OutOrStdout(), created)
		},
	}

	cmd.Flags().StringVar(&trailID, "trail", "", "trail day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&author, "author", "", "display name")

	return cmd
}
