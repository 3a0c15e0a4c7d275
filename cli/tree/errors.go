package tree

import (
	"fmt"
)

// FilesystemError is a failed filesystem operation: permission denied, disk full,
// directory creation failure, etc.
type FilesystemError struct {
	// Op is the failed operation.
	Op string
	// Path is the path the operation was applied to.
	Path string
	Err  error
}

// Error returns error message.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// TransformFailedError wraps any error that happened while transforming an entry.
type TransformFailedError struct {
	// Path is the entry path relative to the project root.
	Path string
	Err  error
}

// Error returns error message.
func (e *TransformFailedError) Error() string {
	return fmt.Sprintf("failed to transform %q: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransformFailedError) Unwrap() error {
	return e.Err
}

// DestinationExistsError is returned by the "fail" conflict policy if the
// destination exists and was not produced by the current pass.
type DestinationExistsError struct {
	Destination string
}

// Error returns error message.
func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination %q already exists", e.Destination)
}
