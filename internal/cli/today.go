package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"trail-comments/internal/models"
	"trail-comments/internal/trail"
)

func newTodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the trail day",
		Long:  "Print the trail day (YYYY-MM-DD in Pacific/Auckland) for now, or for --date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()
			if date != "" {
				parsed, err := time.Parse(time.RFC3339, date)
				if err != nil {
					return fmt.Errorf("invalid --date, want RFC3339: %s", date)
				}
				t = parsed
			}

			id := trail.ID(t)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), models.TrailResponse{TrailID: id})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "instant to convert (RFC3339)")

	return cmd
}
