package tasks

import "fmt"

// FormatError reports a persisted line that could not be decoded. Line is
// the raw offending line, Field names the field that failed.
type FormatError struct {
	Line  string
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad %s in line %q: %v", e.Field, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NotFoundError reports an operation addressing an id the store does not
// hold. It is an ordinary outcome, not a crash condition.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task with id %d", e.ID)
}
