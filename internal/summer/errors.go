package summer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLine is matched by every ParseError.
	ErrInvalidLine = errors.New("line is not a signed decimal integer")
	// ErrNoTotals is returned when a reduction is asked for the maximum of nothing.
	ErrNoTotals = errors.New("no group totals to reduce")
)

// ParseError reports a non-blank input line that could not be parsed as an integer.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, ErrInvalidLine)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ParseError as an ErrInvalidLine.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidLine
}
