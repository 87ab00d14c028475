package ports

import (
	"context"

	"github.com/bft-labs/brolfetch/internal/domain"
)

// RequestDispatcher sends the WFS request and returns the response text.
type RequestDispatcher interface {
	// Dispatch sends exactly one request and blocks until a response arrives
	// or the transport fails. A non-2xx status is not an error: the body is
	// returned like any other. Errors wrap domain.ErrTransport when no
	// response was obtained.
	Dispatch(ctx context.Context, req domain.RequestDescriptor) (domain.Artifact, error)
}
