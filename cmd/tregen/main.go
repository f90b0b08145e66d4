// Command tregen generates a Go source file declaring compiled pattern
// variables, so invalid patterns fail the build step that runs tregen
// rather than process startup.
//
// Usage:
//
//	tregen -pkg patterns [-out patterns_gen.go] Name=PATTERN ...
//
// Each Name=PATTERN argument becomes two declarations in the output: a
// NamePattern string constant and a Name variable initialized with
// tinyregex.MustCompile. The doc comment on the variable embeds the
// compiled instruction listing. Every pattern is compiled here first, so
// the MustCompile in the generated file can only succeed.
//
// Without -out the generated source is written to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/coregx/tinyregex"
)

const modulePath = "github.com/coregx/tinyregex"

type entry struct {
	name    string
	pattern string
	dump    string
}

func main() {
	pkg := flag.String("pkg", "patterns", "package name of the generated file")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s -pkg NAME [-out FILE] Name=PATTERN ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	entries, err := parseEntries(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tregen: %v\n", err)
		os.Exit(2)
	}

	f := generate(*pkg, entries)
	if *out == "" {
		if err := f.Render(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "tregen: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := f.Save(*out); err != nil {
		fmt.Fprintf(os.Stderr, "tregen: %v\n", err)
		os.Exit(1)
	}
}

// parseEntries splits and validates the Name=PATTERN arguments,
// compiling each pattern to reject bad ones before any code is written.
func parseEntries(args []string) ([]entry, error) {
	entries := make([]entry, 0, len(args))
	seen := make(map[string]bool)
	for _, arg := range args {
		name, pattern, found := strings.Cut(arg, "=")
		if !found || name == "" || pattern == "" {
			return nil, fmt.Errorf("argument %q is not Name=PATTERN", arg)
		}
		if !validIdent(name) {
			return nil, fmt.Errorf("name %q is not a valid Go identifier", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		re, err := tinyregex.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", name, err)
		}
		entries = append(entries, entry{name: name, pattern: pattern, dump: re.Dump()})
	}
	return entries, nil
}

func generate(pkg string, entries []entry) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by tregen. DO NOT EDIT.")

	for _, e := range entries {
		f.Const().Id(e.name + "Pattern").Op("=").Lit(e.pattern)
		f.Line()

		var doc strings.Builder
		fmt.Fprintf(&doc, "%s matches the pattern %s.\n\nCompiled program:\n\n", e.name, e.pattern)
		for _, line := range strings.Split(strings.TrimRight(e.dump, "\n"), "\n") {
			doc.WriteString("\t" + line + "\n")
		}
		f.Comment(doc.String())
		f.Var().Id(e.name).Op("=").Qual(modulePath, "MustCompile").Call(jen.Id(e.name + "Pattern"))
		f.Line()
	}
	return f
}

// validIdent checks an exported-or-not Go identifier, ASCII only; the
// generated names come from a build script, not arbitrary input.
func validIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
