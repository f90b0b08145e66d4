// Command redump prints a verbose explanation of a compiled pattern:
// the instruction listing, and optionally the match offsets against a
// sample text.
//
// Usage:
//
//	redump [-dotall] PATTERN [TEXT]
//
// With only a pattern, redump prints the compiled program and exits.
// With a text argument it additionally runs the matcher and reports
// either the match position and length or "nomatch". Exit status is 2
// when the pattern does not compile.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/tinyregex"
)

func main() {
	dotAll := flag.Bool("dotall", false, "make . match \\r and \\n as well")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-dotall] PATTERN [TEXT]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	config := tinyregex.DefaultConfig()
	config.DotMatchesNewline = *dotAll

	re, err := tinyregex.CompileWithConfig(args[0], config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error compiling %s: %v\n", args[0], err)
		os.Exit(2)
	}

	fmt.Printf("regexp: '%s'\n", args[0])
	fmt.Print(re.Dump())

	if len(args) == 2 {
		if loc := re.FindStringIndex(args[1]); loc != nil {
			fmt.Printf("match at %d and length %d\n", loc[0], loc[1]-loc[0])
		} else {
			fmt.Println("nomatch")
		}
	}
}
