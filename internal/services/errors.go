package services

import "errors"

// Error taxonomy for the evaluation pipeline. Validation-class errors
// (persona not found, malformed persona input) map to HTTP 400 at the
// handler layer; everything else is a 500-class provider failure.
var (
	ErrPersonaNotFound       = errors.New("persona not found")
	ErrInvalidPersonaFormat  = errors.New("invalid persona JSON format")
	ErrUnsupportedProvider   = errors.New("unsupported AI provider")
	ErrEmptyProviderResponse = errors.New("empty response from provider")
)
