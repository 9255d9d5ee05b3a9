// internal/parser/parser.go
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"trail-comments/internal/models"
)

type CommentsParser struct{}

func NewCommentsParser() *CommentsParser {
	return &CommentsParser{}
}

// ParseCommentList decodes a list response. Any well-formed JSON value that
// is not an array yields an empty, non-nil slice.
func (p *CommentsParser) ParseCommentList(data []byte) ([]models.Comment, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode comment list: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []models.Comment{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode comment list: %w", err)
	}

	comments := make([]models.Comment, 0, len(items))
	for _, item := range items {
		comments = append(comments, models.Comment(item))
	}
	return comments, nil
}

// ParseComment returns the decoded value as-is.
func (p *CommentsParser) ParseComment(data []byte) (models.Comment, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode comment: %w", err)
	}
	return models.Comment(bytes.TrimSpace(raw)), nil
}
