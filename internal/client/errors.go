// internal/client/errors.go
package client

import (
	"errors"
	"fmt"
)

const (
	MsgLoadFailed         = "Failed to load comments"
	MsgCreateFailed       = "Failed to create comment"
	MsgUnexpectedResponse = "Unexpected response"
)

// CommentsAPIError is returned when the comments API answers with a failure
// status or with a body that is not JSON. Status is 0 when unknown.
type CommentsAPIError struct {
	Message string
	Status  int
}

func NewCommentsAPIError(message string, status int) *CommentsAPIError {
	return &CommentsAPIError{Message: message, Status: status}
}

func (e *CommentsAPIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// AsCommentsAPIError reports whether err wraps a CommentsAPIError.
func AsCommentsAPIError(err error) (*CommentsAPIError, bool) {
	var apiErr *CommentsAPIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
