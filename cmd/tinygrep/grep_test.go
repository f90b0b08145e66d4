package main

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestTrimLineEnding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"lf", "hello\n", "hello"},
		{"crlf", "hello\r\n", "hello"},
		{"cr only", "hello\r", "hello"},
		{"multiple", "hello\r\n\r\n", "hello"},
		{"empty", "", ""},
		{"only endings", "\r\n", ""},
		{"internal cr kept", "he\rllo", "he\rllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(trimLineEnding([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("trimLineEnding(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegexSetFind(t *testing.T) {
	m, err := buildMatcher([]string{`\d+`, `[a-c]+`}, false)
	if err != nil {
		t.Fatalf("buildMatcher: %v", err)
	}

	tests := []struct {
		name  string
		line  string
		at    int
		start int
		end   int
		ok    bool
	}{
		{"digits win on the left", "x42abc", 0, 1, 3, true},
		{"letters win on the left", "xab42", 0, 1, 3, true},
		{"offset skips first match", "ab cd 42", 3, 3, 4, true},
		{"no match", "XYZ", 0, 0, 0, false},
		{"offset past end", "ab", 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := m.find([]byte(tt.line), tt.at)
			if ok != tt.ok || (ok && (start != tt.start || end != tt.end)) {
				t.Errorf("find(%q, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.line, tt.at, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}

func TestRegexSetBadPattern(t *testing.T) {
	if _, err := buildMatcher([]string{`a**`}, false); err == nil {
		t.Error("buildMatcher accepted a**")
	}
}

func TestFixedSetFind(t *testing.T) {
	m, err := buildMatcher([]string{"foo", "bar"}, true)
	if err != nil {
		t.Fatalf("buildMatcher: %v", err)
	}

	start, end, ok := m.find([]byte("xx barfoo"), 0)
	if !ok || start != 3 || end != 6 {
		t.Errorf("find = (%d, %d, %v), want (3, 6, true)", start, end, ok)
	}

	if _, _, ok := m.find([]byte("nothing here"), 0); ok {
		t.Error("find matched a line without any fixed string")
	}
}

func TestFixedSetRejectsEmpty(t *testing.T) {
	if _, err := buildMatcher([]string{"a", ""}, true); err == nil {
		t.Error("buildMatcher accepted an empty fixed string")
	}
}

func TestHighlight(t *testing.T) {
	m, err := buildMatcher([]string{`\d+`}, false)
	if err != nil {
		t.Fatalf("buildMatcher: %v", err)
	}
	g := &grep{matcher: m, opts: options{color: true}, logger: zerolog.Nop()}

	got := g.highlight([]byte("a1b22c"))
	want := "a" + colorOn + "1" + colorOff + "b" + colorOn + "22" + colorOff + "c"
	if got != want {
		t.Errorf("highlight = %q, want %q", got, want)
	}
}

func TestHighlightEmptyMatch(t *testing.T) {
	m, err := buildMatcher([]string{`x*`}, false)
	if err != nil {
		t.Fatalf("buildMatcher: %v", err)
	}
	g := &grep{matcher: m, opts: options{color: true}, logger: zerolog.Nop()}

	// Every position matches zero x's; the loop must still terminate and
	// reproduce the non-matching bytes.
	got := g.highlight([]byte("abxc"))
	if !strings.Contains(got, "a") || !strings.Contains(got, "c") {
		t.Errorf("highlight dropped bytes: %q", got)
	}
	if !strings.Contains(got, colorOn+"x"+colorOff) {
		t.Errorf("highlight missed the x run: %q", got)
	}
}

func TestScanReader(t *testing.T) {
	m, err := buildMatcher([]string{"hello"}, false)
	if err != nil {
		t.Fatalf("buildMatcher: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		invert  bool
		matched bool
	}{
		{"match", "say hello\nbye\n", false, true},
		{"no match", "one\ntwo\n", false, false},
		{"empty lines skipped", "\n\n\n", false, false},
		{"invert", "one\ntwo\n", true, true},
		{"crlf input", "say hello\r\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &grep{
				matcher: m,
				opts:    options{invert: tt.invert, quiet: true},
				logger:  zerolog.Nop(),
			}
			matched, err := g.scanReader(strings.NewReader(tt.input), "", false)
			if err != nil {
				t.Fatalf("scanReader: %v", err)
			}
			if matched != tt.matched {
				t.Errorf("scanReader(%q) matched = %v, want %v", tt.input, matched, tt.matched)
			}
		})
	}
}
