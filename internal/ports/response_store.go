package ports

import "context"

// ResponseStore persists the response text.
type ResponseStore interface {
	// Save writes text, replacing any previous content.
	// The implementation should write atomically so a failed save leaves
	// the previous content in place.
	Save(ctx context.Context, text string) error

	// Path returns where the text is stored, for user-facing messages.
	Path() string
}
