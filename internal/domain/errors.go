package domain

import "errors"

// Domain errors represent error conditions in the brolfetch domain.
// They are wrapped by adapters and can be checked with errors.Is.
var (
	// ErrTransport is returned when no HTTP response could be obtained
	// (DNS failure, connection refused, TLS error, canceled context).
	ErrTransport = errors.New("brolfetch: transport failure")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("brolfetch: invalid configuration")

	// ErrWriteOutput is returned when the response text could not be persisted.
	ErrWriteOutput = errors.New("brolfetch: write output")
)
