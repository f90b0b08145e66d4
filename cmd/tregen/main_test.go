package main

import (
	"strings"
	"testing"
)

func TestParseEntries(t *testing.T) {
	entries, err := parseEntries([]string{`Digits=\d+`, `Hex=[0-9a-f]{2}`})
	if err != nil {
		t.Fatalf("parseEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].name != "Digits" || entries[0].pattern != `\d+` {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[0].dump == "" {
		t.Error("entry 0 has no instruction dump")
	}
}

func TestParseEntriesErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing equals", []string{"Digits"}},
		{"empty name", []string{`=\d+`}},
		{"empty pattern", []string{"Digits="}},
		{"bad identifier", []string{`my-name=\d+`}},
		{"leading digit", []string{`1abc=\d+`}},
		{"duplicate", []string{"A=x", "A=y"}},
		{"bad pattern", []string{"A=a**"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseEntries(tt.args); err == nil {
				t.Errorf("parseEntries(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	entries, err := parseEntries([]string{`Digits=\d+`})
	if err != nil {
		t.Fatalf("parseEntries: %v", err)
	}

	var b strings.Builder
	if err := generate("patterns", entries).Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	src := b.String()

	for _, want := range []string{
		"Code generated by tregen. DO NOT EDIT.",
		"package patterns",
		`const DigitsPattern = "\\d+"`,
		"tinyregex.MustCompile(DigitsPattern)",
		"Compiled program:",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestValidIdent(t *testing.T) {
	valid := []string{"A", "abc", "_x", "A1", "camelCase"}
	invalid := []string{"", "1a", "a-b", "a.b", "a b"}

	for _, s := range valid {
		if !validIdent(s) {
			t.Errorf("validIdent(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if validIdent(s) {
			t.Errorf("validIdent(%q) = true, want false", s)
		}
	}
}
