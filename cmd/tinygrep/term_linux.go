//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal, by
// asking the kernel for its termios state.
func stdoutIsTerminal() bool {
	_, err := unix.IoctlGetTermios(int(os.Stdout.Fd()), unix.TCGETS)
	return err == nil
}
