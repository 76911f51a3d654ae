package zipfile

import "fmt"

// ArchiveError is thrown (returned) for any zip central-directory or
// DEFLATE failure, per spec.md §4.3/§7.
type ArchiveError struct {
	Message string
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("zip error: %s", e.Message)
}

func newArchiveError(format string, args ...any) error {
	return &ArchiveError{Message: fmt.Sprintf(format, args...)}
}
