package jsonld

import "errors"

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

// ErrCodeInvalidInput indicates an input shape the importer does not support.
const ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

// ErrInvalidInput is returned when the importer receives an unsupported input shape.
var ErrInvalidInput = errors.New("jsonld: invalid input")

// Code returns ErrCodeInvalidInput for unsupported input errors. Other
// errors come from the graph collaborator and have no code here.
func Code(err error) ErrorCode {
	if errors.Is(err, ErrInvalidInput) {
		return ErrCodeInvalidInput
	}
	return ""
}
