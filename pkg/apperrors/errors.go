package apperrors

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrMalformedModelResponse = errors.New("malformed model response")
)
