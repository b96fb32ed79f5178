package export

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNilRoot           = errors.New("export: nil root")
)

// WriteError reports a failure of the destination sink. The in-memory graph
// is not affected.
type WriteError struct {
	Format Format // Format being written
	Path   string // Destination file, empty for plain writers
	Err    error  // Underlying I/O error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export %s to %q: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *WriteError) Unwrap() error {
	return e.Err
}
