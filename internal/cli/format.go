package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"trail-comments/internal/models"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCommentList prints one comment per line.
func printCommentList(w io.Writer, trailID string, comments []models.Comment) error {
	if len(comments) == 0 {
		_, err := fmt.Fprintf(w, "No comments for %s.\n", trailID)
		return err
	}

	if _, err := fmt.Fprintf(w, "Comments for %s:\n\n", trailID); err != nil {
		return err
	}
	for _, c := range comments {
		if err := printComment(w, c); err != nil {
			return err
		}
	}
	return nil
}

// printComment prints the author and text fields when the record has them,
// and the compact JSON otherwise.
func printComment(w io.Writer, c models.Comment) error {
	var fields struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := json.Unmarshal(c, &fields); err == nil && fields.Text != "" {
		author := fields.Author
		if author == "" {
			author = "anonymous"
		}
		_, err := fmt.Fprintf(w, "  %s: %s\n", author, fields.Text)
		return err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, c); err != nil {
		return fmt.Errorf("formatting comment: %w", err)
	}
	_, err := fmt.Fprintf(w, "  %s\n", buf.String())
	return err
}
