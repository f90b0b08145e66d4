// Package tinyregex provides a small byte-oriented regex engine with a
// fixed memory footprint.
//
// tinyregex trades expressiveness for predictability:
//   - A compiled pattern is a plain value of a few hundred bytes with no
//     pointers: no heap allocation at compile time or match time.
//   - Instruction and class storage are fixed arrays; patterns that do
//     not fit are rejected at compile time, never truncated.
//   - Matching is plain backtracking over at most 63 instructions, with
//     a configurable ceiling on repetition counts.
//
// The supported dialect is deliberately tiny: anchors (^ $), dot, literal
// bytes, character classes with ranges and negation, the \d \D \w \W \s \S
// shorthands, and greedy or lazy quantifiers (? * + {m,n} and their ?-
// suffixed lazy forms). There is no alternation, no grouping, and no
// capture; '|', '(' and ')' are ordinary literals.
//
// The API mirrors the standard library's regexp package where the dialect
// overlaps, so simple call sites can switch imports:
//
//	// Compile a pattern
//	re, err := tinyregex.Compile(`[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find first match
//	match := re.Find([]byte("hello 123 world"))
//	fmt.Println(string(match)) // "123"
//
//	// Check if matches
//	if re.Match([]byte("hello 123")) {
//	    fmt.Println("matched!")
//	}
//
// Advanced usage:
//
//	// Custom configuration
//	config := tinyregex.DefaultConfig()
//	config.DotMatchesNewline = true
//	re, err := tinyregex.CompileWithConfig(`a.c`, config)
//
// Matching is leftmost-first, not leftmost-longest: the scan stops at the
// first starting offset that matches, and quantifier greediness decides
// the length from there. This is the traditional backtracking behavior,
// not the POSIX behavior of the standard library's Longest mode.
package tinyregex

import (
	"github.com/coregx/tinyregex/backtrack"
)

// Regex represents a compiled regular expression.
//
// A Regex is immutable after compilation and safe for concurrent use by
// multiple goroutines.
//
// Example:
//
//	re := tinyregex.MustCompile(`hello`)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	prog    backtrack.Prog
	pattern string
}

// Regexp is an alias for Regex to provide drop-in compatibility with stdlib
// regexp. This allows replacing `import "regexp"` with
// `import regexp "github.com/coregx/tinyregex"` without changing type names
// in existing code.
//
// Example:
//
//	import regexp "github.com/coregx/tinyregex"
//
//	var re *regexp.Regexp = regexp.MustCompile(`\d+`)
type Regexp = Regex

// Compile compiles a regular expression pattern.
//
// The error is always a *backtrack.ParseError wrapping one of the
// backtrack sentinel errors, so callers can branch on the failure kind
// with errors.Is. Failing to match later is not an error.
//
// Example:
//
//	re, err := tinyregex.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	prog, err := backtrack.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		prog:    prog,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var wordRegex = tinyregex.MustCompile(`\w+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := tinyregex.DefaultConfig()
//	config.MaxRepeat = 256 // Tighter backtracking ceiling
//	re, err := tinyregex.CompileWithConfig(`a+`, config)
func CompileWithConfig(pattern string, config backtrack.Config) (*Regex, error) {
	prog, err := backtrack.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		prog:    prog,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass to CompileWithConfig.
//
// Example:
//
//	config := tinyregex.DefaultConfig()
//	config.DotMatchesNewline = true
//	re, _ := tinyregex.CompileWithConfig("a.c", config)
func DefaultConfig() backtrack.Config {
	return backtrack.DefaultConfig()
}

// Match reports whether the byte slice b contains any match of pattern.
// It is a convenience for one-shot matching; compile once and reuse the
// Regex when the pattern is used more than once.
func Match(pattern string, b []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(b), nil
}

// MatchString reports whether the string s contains any match of pattern.
func MatchString(pattern string, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside the argument text; the returned string is a
// regular expression matching the literal text.
//
// The escaped set is the standard library's. Some of those bytes are
// already plain literals in this dialect, but escaping a literal is
// harmless, and quoting with the full set keeps the output portable
// across engines.
//
// Example:
//
//	escaped := tinyregex.QuoteMeta("hello.world")
//	// escaped = "hello\\.world"
//	re := tinyregex.MustCompile(escaped)
//	re.MatchString("hello.world") // true
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Match reports whether the byte slice b contains any match of the pattern.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	if re.Match([]byte("hello 123")) {
//	    println("contains digits")
//	}
func (r *Regex) Match(b []byte) bool {
	return r.prog.Match(b)
}

// MatchString reports whether the string s contains any match of the pattern.
//
// Example:
//
//	re := tinyregex.MustCompile(`hello`)
//	if re.MatchString("hello world") {
//	    println("matched!")
//	}
func (r *Regex) MatchString(s string) bool {
	return r.prog.MatchString(s)
}

// Find returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found; an empty match yields an empty,
// non-nil slice.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	match := re.Find([]byte("age: 42"))
//	println(string(match)) // "42"
func (r *Regex) Find(b []byte) []byte {
	start, end, ok := r.prog.Find(b)
	if !ok {
		return nil
	}
	return b[start:end:end]
}

// FindString returns a string holding the text of the leftmost match in s.
// Returns the empty string if there is no match — which an empty match
// also yields; use FindStringIndex to tell the two apart.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	match := re.FindString("age: 42")
//	println(match) // "42"
func (r *Regex) FindString(s string) string {
	start, end, ok := r.prog.FindString(s)
	if !ok {
		return ""
	}
	return s[start:end]
}

// FindIndex returns a two-element slice of integers defining the location
// of the leftmost match in b. The match is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	loc := re.FindIndex([]byte("age: 42"))
//	println(loc[0], loc[1]) // 5, 7
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok := r.prog.Find(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex returns a two-element slice of integers defining the
// location of the leftmost match in s. The match is at s[loc[0]:loc[1]].
// Returns nil if no match is found.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	loc := re.FindStringIndex("age: 42")
//	println(loc[0], loc[1]) // 5, 7
func (r *Regex) FindStringIndex(s string) []int {
	start, end, ok := r.prog.FindString(s)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindAllIndex returns index pairs for all successive matches of the
// pattern in b. If n > 0, it returns at most n matches. If n <= 0, it
// returns all matches. Returns nil if there are none.
//
// Successive matches do not overlap. Empty matches follow the standard
// library's rule: an empty match starting where the previous match ended
// is dropped, and the scan advances one byte (stdlib advances one rune;
// this engine is byte oriented). A ^-anchored pattern matches at most
// once, at the start of b.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	var matches [][]int
	pos := 0
	prevEnd := -1
	for pos <= len(b) {
		start, end, ok := r.prog.Find(b[pos:])
		if !ok {
			break
		}

		absStart := pos + start
		absEnd := pos + end
		if absStart == absEnd {
			if absStart != prevEnd {
				matches = append(matches, []int{absStart, absEnd})
			}
			pos = absStart + 1
		} else {
			matches = append(matches, []int{absStart, absEnd})
			pos = absEnd
		}
		prevEnd = absEnd

		if r.prog.Anchored() {
			break
		}
		if n > 0 && len(matches) >= n {
			break
		}
	}

	return matches
}

// FindAll returns a slice of all successive matches of the pattern in b,
// under the same rules as FindAllIndex.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	matches := re.FindAll([]byte("1 2 3"), -1)
//	// matches = [[]byte("1"), []byte("2"), []byte("3")]
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	locs := r.FindAllIndex(b, n)
	if locs == nil {
		return nil
	}
	matches := make([][]byte, len(locs))
	for i, loc := range locs {
		matches[i] = b[loc[0]:loc[1]:loc[1]]
	}
	return matches
}

// FindAllStringIndex returns index pairs for all successive matches of
// the pattern in s, under the same rules as FindAllIndex.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// FindAllString returns a slice of all successive matches of the pattern
// in s, under the same rules as FindAllIndex.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	matches := re.FindAllString("1 2 3", -1)
//	// matches = ["1", "2", "3"]
func (r *Regex) FindAllString(s string, n int) []string {
	locs := r.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	matches := make([]string, len(locs))
	for i, loc := range locs {
		matches[i] = s[loc[0]:loc[1]]
	}
	return matches
}

// String returns the source text used to compile the regular expression.
//
// Example:
//
//	re := tinyregex.MustCompile(`\d+`)
//	println(re.String()) // `\d+`
func (r *Regex) String() string {
	return r.pattern
}

// Dump returns a listing of the compiled program, one instruction per
// line. It is meant for debugging and tooling; the format is not stable.
//
// Example:
//
//	re := tinyregex.MustCompile(`a+b`)
//	print(re.Dump())
//	//  0: Char 'a'
//	//  1: Plus
//	//  2: Char 'b'
func (r *Regex) Dump() string {
	return r.prog.Dump()
}

// MarshalText implements encoding.TextMarshaler. The output equals
// String(), so a *Regex field round-trips through JSON, YAML, and other
// text-based encodings.
func (r *Regex) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by compiling the
// text as a pattern with the default configuration.
func (r *Regex) UnmarshalText(text []byte) error {
	re, err := Compile(string(text))
	if err != nil {
		return err
	}
	*r = *re
	return nil
}
