package tutor

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an operation of the same kind is already in
// flight. Duplicate triggers are ignored, never queued.
var ErrBusy = errors.New("operation already in progress")

// ValidationError reports invalid input or an invalid operation for
// the current selection. It is recoverable inline and never aborts the
// session.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// StateLoadError reports a failed state restore. The in-memory session
// is untouched when this is returned.
type StateLoadError struct {
	Path string
	Err  error
}

func (e *StateLoadError) Error() string {
	return fmt.Sprintf("load state from %s: %v", e.Path, e.Err)
}

func (e *StateLoadError) Unwrap() error { return e.Err }

// ExportError reports a failed markdown export.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
