package main

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/tinyregex"
)

// matcher is the one thing the scan loop needs: the leftmost match in
// line at or after offset at. Both the regex set and the fixed-string
// automaton satisfy it.
type matcher interface {
	find(line []byte, at int) (start, end int, ok bool)
	dump() string
}

// buildMatcher compiles the patterns into a regexSet, or into an
// Aho-Corasick automaton in fixed-string mode.
func buildMatcher(patterns []string, fixed bool) (matcher, error) {
	if fixed {
		return newFixedSet(patterns)
	}
	return newRegexSet(patterns)
}

// regexSet matches a line against several compiled patterns, reporting
// the leftmost match across all of them.
type regexSet struct {
	res []*tinyregex.Regex
}

func newRegexSet(patterns []string) (*regexSet, error) {
	res := make([]*tinyregex.Regex, 0, len(patterns))
	for _, p := range patterns {
		re, err := tinyregex.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		res = append(res, re)
	}
	return &regexSet{res: res}, nil
}

func (s *regexSet) find(line []byte, at int) (start, end int, ok bool) {
	if at > len(line) {
		return 0, 0, false
	}
	for _, re := range s.res {
		loc := re.FindIndex(line[at:])
		if loc == nil {
			continue
		}
		if !ok || at+loc[0] < start {
			start, end, ok = at+loc[0], at+loc[1], true
		}
	}
	return start, end, ok
}

func (s *regexSet) dump() string {
	var b strings.Builder
	for _, re := range s.res {
		fmt.Fprintf(&b, "regexp: '%s'\n%s", re.String(), re.Dump())
	}
	return b.String()
}

// fixedSet matches literal strings with an Aho-Corasick automaton, which
// scans all patterns in one pass over the line.
type fixedSet struct {
	auto     *ahocorasick.Automaton
	patterns []string
}

func newFixedSet(patterns []string) (*fixedSet, error) {
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("empty fixed string")
		}
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building fixed-string automaton: %w", err)
	}
	return &fixedSet{auto: auto, patterns: patterns}, nil
}

func (s *fixedSet) find(line []byte, at int) (start, end int, ok bool) {
	if at > len(line) {
		return 0, 0, false
	}
	m := s.auto.Find(line, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

func (s *fixedSet) dump() string {
	var b strings.Builder
	for _, p := range s.patterns {
		fmt.Fprintf(&b, "fixed: '%s'\n", p)
	}
	return b.String()
}
