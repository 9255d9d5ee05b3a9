package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		trailID string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List comments for a trail day",
		Long:  "List comments for a trail day. Defaults to today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			if trailID == "" {
				trailID = svc.Today(cmd.Context())
			}

			comments, err := svc.ListComments(cmd.Context(), trailID, limit)
			if err != nil {
				return describeError(err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), comments)
			}
			return printCommentList(cmd.OutOrStdout(), trailID, comments)
		},
	}

	cmd.Flags().StringVar(&trailID, "trail", "", "trail day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of comments (default 50)")

	return cmd
}
