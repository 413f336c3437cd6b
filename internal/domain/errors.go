package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a failed resolution or lookup that the caller can
// recover from by asking the user (locate the file, pick another key).
var ErrNotFound = errors.New("not found")

// DecodeError reports input that could not be read as text. The load
// fails; nothing on disk is touched.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decode %s: not valid text", e.Path)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError rejects a value that violates a setting's
// constraints. It is raised before any mutation takes place.
type ValidationError struct {
	Key        string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Constraint)
}

// PathSecurityError rejects a path that escapes the allow-listed roots.
// There is no override.
type PathSecurityError struct {
	Path   string
	Reason string
}

func (e *PathSecurityError) Error() string {
	return fmt.Sprintf("path %q rejected: %s", e.Path, e.Reason)
}
