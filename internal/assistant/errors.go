package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrEventNotFound   = errors.New("classification event not found")
	ErrInvalidFeedback = errors.New("feedback requires a category and action")
)
