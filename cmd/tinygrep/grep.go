package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
)

// ANSI escape for the match highlight, grep's default red.
const (
	colorOn  = "\x1b[01;31m"
	colorOff = "\x1b[0m"
)

type grep struct {
	matcher matcher
	opts    options
	logger  zerolog.Logger
}

// scanAll runs the matcher over every named file, or stdin when none are
// given. It reports whether any line matched anywhere. Multiple files
// get a "file:" prefix on each printed line, like grep.
func (g *grep) scanAll(files []string) (bool, error) {
	if len(files) == 0 {
		matched, err := g.scanReader(os.Stdin, "", false)
		return matched, err
	}

	prefix := len(files) > 1
	any := false
	for _, name := range files {
		matched, err := g.scanFile(name, prefix)
		if err != nil {
			return any, err
		}
		any = any || matched
	}
	return any, nil
}

func (g *grep) scanFile(name string, prefix bool) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	label := ""
	if prefix {
		label = name
	}
	return g.scanReader(f, label, g.opts.gzip || strings.HasSuffix(name, ".gz"))
}

// scanReader is the line loop shared by files and stdin: read a line,
// strip the trailing CR/LF, skip it if empty, match, print.
func (g *grep) scanReader(r io.Reader, label string, gzipped bool) (bool, error) {
	if gzipped {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return false, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	count := 0
	for scanner.Scan() {
		lineNo++
		line := trimLineEnding(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		_, _, ok := g.matcher.find(line, 0)
		if ok == g.opts.invert {
			continue
		}
		count++
		if g.opts.quiet {
			// One match settles the exit status; no need to read on.
			return true, nil
		}
		if !g.opts.countOnly {
			g.printLine(label, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return count > 0, err
	}

	if g.opts.countOnly && !g.opts.quiet {
		if label != "" {
			fmt.Printf("%s:%d\n", label, count)
		} else {
			fmt.Println(count)
		}
	}
	g.logger.Debug().Str("input", label).Int("lines", lineNo).Int("matched", count).Msg("scanned")
	return count > 0, nil
}

func (g *grep) printLine(label string, lineNo int, line []byte) {
	if label != "" {
		fmt.Printf("%s:", label)
	}
	if g.opts.lineNumber {
		fmt.Printf("%d:", lineNo)
	}
	if g.opts.color && !g.opts.invert {
		fmt.Println(g.highlight(line))
	} else {
		fmt.Printf("%s\n", line)
	}
}

// highlight wraps every match segment of line in the ANSI color escape.
// Empty matches are skipped over byte by byte so the loop always makes
// progress.
func (g *grep) highlight(line []byte) string {
	var b strings.Builder
	at := 0
	for at <= len(line) {
		start, end, ok := g.matcher.find(line, at)
		if !ok {
			break
		}
		b.Write(line[at:start])
		if end == start {
			if start < len(line) {
				b.WriteByte(line[start])
			}
			at = start + 1
			continue
		}
		b.WriteString(colorOn)
		b.Write(line[start:end])
		b.WriteString(colorOff)
		at = end
	}
	if at < len(line) {
		b.Write(line[at:])
	}
	return b.String()
}

// trimLineEnding strips trailing CR/LF bytes. bufio.Scanner removes the
// LF already, but files written on Windows still carry the CR.
func trimLineEnding(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\r' || line[len(line)-1] == '\n') {
		line = line[:len(line)-1]
	}
	return line
}
