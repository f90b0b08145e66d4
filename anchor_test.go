package tinyregex

import (
	"regexp"
	"testing"
)

// TestAnchorInFindAll tests that ^ anchor only matches at position 0.
// An anchored program must not re-match at later offsets when FindAll
// resumes the scan past the first match.
func TestAnchorInFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
	}{
		{"^", "12345"},
		{"$", "12345"},
		{"^test", "test hello test"},
		{"^[a-z]+", "hello world"},
		{"^.", "xyz"},
		{"^x*", "xxyx"},
		{"b$", "ab ab"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			// stdlib reference
			re := regexp.MustCompile(tt.pattern)
			expected := re.FindAllStringIndex(tt.input, -1)

			tre := MustCompile(tt.pattern)
			got := tre.FindAllStringIndex(tt.input, -1)

			if len(got) != len(expected) {
				t.Errorf("FindAllStringIndex(%q, %q): got %d matches, want %d matches\n  got: %v\n  want: %v",
					tt.pattern, tt.input, len(got), len(expected), got, expected)
				return
			}

			for i := range got {
				if got[i][0] != expected[i][0] || got[i][1] != expected[i][1] {
					t.Errorf("FindAllStringIndex(%q, %q)[%d]: got %v, want %v",
						tt.pattern, tt.input, i, got[i], expected[i])
				}
			}
		})
	}
}

// TestAnchoredMatchesOnce pins the anchored fast path: FindAll on a
// ^-anchored pattern stops after the first match even when the text
// would match again at a later offset.
func TestAnchoredMatchesOnce(t *testing.T) {
	tre := MustCompile("^a")
	got := tre.FindAllStringIndex("aaa", -1)
	want := [][]int{{0, 1}}

	if len(got) != 1 || got[0][0] != want[0][0] || got[0][1] != want[0][1] {
		t.Errorf("FindAllStringIndex(%q, %q) = %v, want %v", "^a", "aaa", got, want)
	}
}

// TestMidPatternAnchors covers anchors that are not at the pattern edge.
// Both engines accept the patterns; neither can ever match them.
func TestMidPatternAnchors(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
	}{
		{"a^b", "ab"},
		{"a$b", "ab"},
		{"x^", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			tre := MustCompile(tt.pattern)

			if got, want := tre.MatchString(tt.input), re.MatchString(tt.input); got != want {
				t.Errorf("MatchString(%q, %q) = %v, stdlib says %v", tt.pattern, tt.input, got, want)
			}
			if got := tre.FindStringIndex(tt.input); got != nil {
				t.Errorf("FindStringIndex(%q, %q) = %v, want no match", tt.pattern, tt.input, got)
			}
		})
	}
}
