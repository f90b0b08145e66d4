// Command tinygrep scans files (or stdin) line by line and prints the
// lines that match a pattern, in the spirit of grep but speaking the
// tinyregex dialect.
//
// Usage:
//
//	tinygrep [options] PATTERN [FILE...]
//	tinygrep [options] -e PATTERN [-e PATTERN...] [FILE...]
//
// Exit status follows the grep convention: 0 when at least one line
// matched, 1 when none did, 2 on a usage or compile error.
//
// Defaults for line numbering and coloring can be set in a tinygrep.yaml
// config file in the working directory or $HOME/.config/tinygrep/, or via
// TINYGREP_* environment variables; command-line flags win over both.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "tinygrep",
		Usage:     "print lines matching a tinyregex pattern",
		UsageText: "tinygrep [options] PATTERN [FILE...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "regexp",
				Aliases: []string{"e"},
				Usage:   "pattern to match; repeatable, a line matches if any pattern does",
			},
			&cli.BoolFlag{
				Name:    "fixed-strings",
				Aliases: []string{"F"},
				Usage:   "treat patterns as literal strings, matched with an Aho-Corasick automaton",
			},
			&cli.BoolFlag{
				Name:    "line-number",
				Aliases: []string{"n"},
				Usage:   "prefix each printed line with its line number",
			},
			&cli.BoolFlag{
				Name:    "invert-match",
				Aliases: []string{"v"},
				Usage:   "print the lines that do not match",
			},
			&cli.BoolFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "print only a count of matching lines per input",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "print nothing; the exit status is the answer",
			},
			&cli.StringFlag{
				Name:  "color",
				Value: "auto",
				Usage: "highlight match segments: auto, always, or never",
			},
			&cli.BoolFlag{
				Name:    "gzip",
				Aliases: []string{"z"},
				Usage:   "decompress input with gzip (files ending in .gz are detected automatically)",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print each compiled program to stderr before scanning",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging on stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tinygrep: %v\n", err)
		os.Exit(2)
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))

	opts, err := resolveOptions(c, logger)
	if err != nil {
		return err
	}

	patterns := c.StringSlice("regexp")
	args := c.Args().Slice()
	if len(patterns) == 0 {
		if len(args) == 0 {
			return fmt.Errorf("no pattern given")
		}
		patterns, args = args[:1], args[1:]
	}

	m, err := buildMatcher(patterns, c.Bool("fixed-strings"))
	if err != nil {
		return err
	}
	if c.Bool("dump") {
		fmt.Fprint(os.Stderr, m.dump())
	}
	logger.Debug().
		Strs("patterns", patterns).
		Bool("fixed", c.Bool("fixed-strings")).
		Msg("patterns compiled")

	g := &grep{matcher: m, opts: opts, logger: logger}
	matched, err := g.scanAll(args)
	if err != nil {
		return err
	}
	if !matched {
		// No match is exit status 1, reported without a message.
		return cli.Exit("", 1)
	}
	return nil
}

// newLogger builds the diagnostic logger. tinygrep logs only to stderr
// and only when asked; output on stdout is reserved for matched lines.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
