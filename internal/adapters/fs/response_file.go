package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/brolfetch/internal/domain"
)

// DefaultFileName is where the response is saved when no path is configured.
const DefaultFileName = "response.txt"

// ResponseFile implements ports.ResponseStore using a single text file.
type ResponseFile struct {
	path string
}

// NewResponseFile creates a ResponseFile writing to path.
func NewResponseFile(path string) *ResponseFile {
	if path == "" {
		path = DefaultFileName
	}
	return &ResponseFile{path: path}
}

// Save writes text to the file, replacing any previous content.
// Uses atomic write (temp file in the same directory, then rename) so a
// failed write leaves the previous file untouched. An existing file keeps
// its permission bits, and a symlink is written through to its target.
func (r *ResponseFile) Save(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}

	target, mode := r.target()
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWriteOutput, err)
	}
	return nil
}

// target resolves symlinks in the configured path and returns the file to
// replace with the mode it should keep. A path that does not exist yet is
// created with mode 0644.
func (r *ResponseFile) target() (string, os.FileMode) {
	resolved, err := filepath.EvalSymlinks(r.path)
	if err != nil {
		return r.path, 0o644
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return resolved, 0o644
	}
	return resolved, info.Mode().Perm()
}

// Path returns the file path.
func (r *ResponseFile) Path() string {
	return r.path
}
