package colors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed matches every FormatError.
	ErrMalformed = errors.New("malformed color value")
	// ErrUnknownFormat is wrapped when a literal matches none of the known
	// grammars.
	ErrUnknownFormat = errors.New("unknown color format")
)

// FormatError reports a literal which does not follow the grammar a
// particular extractor expects.
type FormatError struct {
	Input   string
	Grammar string // "hex", "rgb", "hsl", "alpha" or "color"
	Err     error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("malformed %s value %q", e.Grammar, e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrMalformed
}

// TypeError reports non textual input.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("input must be text, received %T", e.Value)
}
