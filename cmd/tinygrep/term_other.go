//go:build !linux

package main

import "os"

// stdoutIsTerminal falls back to the character-device mode bit on
// platforms where we do not probe the termios state directly.
func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
