package models

import (
	"encoding/json"
)

// Comment is an opaque comment record as produced by the comments API.
// The client never inspects its fields.
type Comment = json.RawMessage

// NewComment is the payload the CLI and gateway build when the caller only
// supplies text. Any other JSON-serializable value may be sent instead.
// swagger:model NewComment
type NewComment struct {
	// Trail day the comment belongs to (YYYY-MM-DD)
	TrailID string `json:"trailId"`
	// Comment body text
	Text string `json:"text"`
	// Optional display name of the author
	Author string `json:"author,omitempty"`
}

// CommentsResponse represents a response for the list endpoint
// swagger:model CommentsResponse
type CommentsResponse struct {
	// Comments returned by the upstream API
	Comments []Comment `json:"comments" swaggertype:"array,object"`
	// Metadata about the request
	Meta struct {
		// Trail day that was queried
		TrailID string `json:"trail_id"`
		// Requested limit
		RequestedLimit int `json:"requested_limit"`
		// Actual count of comments returned
		ActualCount int `json:"actual_count"`
		// Processing time in milliseconds
		ProcessingTimeMs int64 `json:"processing_time_ms"`
	} `json:"meta"`
}

// TrailResponse represents a response for the today endpoint
// swagger:model TrailResponse
type TrailResponse struct {
	// Trail day identifier (YYYY-MM-DD, Pacific/Auckland)
	TrailID string `json:"trailId"`
}
