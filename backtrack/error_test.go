package backtrack

import (
	"errors"
	"strings"
	"testing"
)

// TestParseErrorShape verifies the wrapper: message in the stdlib
// "error parsing regexp" shape, sentinel reachable through errors.Is and
// errors.As, position and pattern preserved.
func TestParseErrorShape(t *testing.T) {
	_, err := Compile("a**")
	if err == nil {
		t.Fatal("Compile(a**) = nil, want error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Pattern != "a**" || perr.Pos != 2 {
		t.Errorf("ParseError = {Pattern: %q, Pos: %d}, want {Pattern: \"a**\", Pos: 2}", perr.Pattern, perr.Pos)
	}
	if !errors.Is(err, ErrMissingAtom) {
		t.Errorf("errors.Is(err, ErrMissingAtom) = false for %v", err)
	}
	if errors.Is(err, ErrDanglingEscape) {
		t.Errorf("errors.Is matched the wrong sentinel for %v", err)
	}

	want := "error parsing regexp: quantifier has no preceding atom: `a**`"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestNoMatchIsNotAnError: the compile error set is closed, and failing
// to match is never part of it.
func TestNoMatchIsNotAnError(t *testing.T) {
	p, err := Compile("xyz")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := p.FindString("abc"); ok {
		t.Fatal("unexpected match")
	}
}

// TestSentinelMessages pins the sentinel texts; tools print them to users.
func TestSentinelMessages(t *testing.T) {
	sentinels := map[error]string{
		ErrEmptyPattern:      "empty pattern",
		ErrMissingAtom:       "quantifier has no preceding atom",
		ErrDanglingEscape:    "dangling escape",
		ErrUnterminatedClass: "unterminated character class",
		ErrInvalidRange:      "invalid character range",
		ErrInvalidRepeat:     "invalid repeat bounds",
		ErrRepeatTooLarge:    "repeat bound too large",
		ErrProgramTooLarge:   "program too large",
		ErrClassTooLarge:     "character class too large",
	}
	for err, want := range sentinels {
		if err.Error() != want {
			t.Errorf("sentinel = %q, want %q", err.Error(), want)
		}
	}
}

// TestEveryParseErrorWrapsASentinel walks a sampler of bad patterns and
// checks each error unwraps to exactly one known sentinel.
func TestEveryParseErrorWrapsASentinel(t *testing.T) {
	sentinels := []error{
		ErrEmptyPattern, ErrMissingAtom, ErrDanglingEscape,
		ErrUnterminatedClass, ErrInvalidRange, ErrInvalidRepeat,
		ErrRepeatTooLarge, ErrProgramTooLarge, ErrClassTooLarge,
	}
	bad := []string{
		"", "*", `\`, "[", "[b-a]", "a{", "a{9999}",
		strings.Repeat("x", MaxProgSize),
		"[" + strings.Repeat("x", MaxClassBytes) + "]",
	}
	for _, pattern := range bad {
		_, err := Compile(pattern)
		if err == nil {
			t.Errorf("Compile(%q) = nil, want error", pattern)
			continue
		}
		matched := 0
		for _, s := range sentinels {
			if errors.Is(err, s) {
				matched++
			}
		}
		if matched != 1 {
			t.Errorf("Compile(%q) error %v matches %d sentinels, want 1", pattern, err, matched)
		}
	}
}
