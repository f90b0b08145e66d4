package backtrack

import (
	"errors"
	"fmt"
)

// Compilation errors. Every failure mode of Compile wraps exactly one of
// these sentinels in a *ParseError, so callers can branch with errors.Is.
// Failing to match is not an error and is never reported through this
// type; it is an ordinary result.
var (
	// ErrEmptyPattern is returned for the empty pattern. An empty program
	// is still expressible: the zero Prog matches the empty string.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrMissingAtom is returned when a quantifier has no preceding atom
	// to modify, as in `*a`, `^*`, or the second star of `a**`.
	ErrMissingAtom = errors.New("quantifier has no preceding atom")

	// ErrDanglingEscape is returned when the pattern ends directly after
	// a backslash.
	ErrDanglingEscape = errors.New("dangling escape")

	// ErrUnterminatedClass is returned when a `[` has no closing `]`.
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrInvalidRange is returned for a class range whose low byte
	// exceeds its high byte, such as `[z-a]`.
	ErrInvalidRange = errors.New("invalid character range")

	// ErrInvalidRepeat is returned for malformed `{m,n}` bounds: a
	// non-digit where a digit is required, a missing closing brace, or
	// max smaller than min.
	ErrInvalidRepeat = errors.New("invalid repeat bounds")

	// ErrRepeatTooLarge is returned when a `{m,n}` bound exceeds
	// MaxRepeatBound.
	ErrRepeatTooLarge = errors.New("repeat bound too large")

	// ErrProgramTooLarge is returned when the pattern needs more than
	// MaxProgSize instructions.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrClassTooLarge is returned when the encoded character classes
	// overflow the MaxClassBytes buffer.
	ErrClassTooLarge = errors.New("character class too large")
)

// ParseError records a compilation failure: the offending pattern, the
// byte offset the compiler was looking at, and the sentinel describing
// what went wrong.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface, mirroring the standard library's
// "error parsing regexp" shape.
func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing regexp: %v: `%s`", e.Err, e.Pattern)
}

// Unwrap returns the underlying sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
