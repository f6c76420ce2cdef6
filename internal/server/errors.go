// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedFormat indicates an upload with a file extension outside
// the accepted set
type ErrUnsupportedFormat struct {
	Filename string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Filename)
}

// ErrRenderFailed indicates a rendering backend could not produce output
type ErrRenderFailed struct {
	Format string
	Cause  error
}

func (e *ErrRenderFailed) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Format, e.Cause)
}

func (e *ErrRenderFailed) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case *ErrRenderFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
