// Package conv provides checked integer narrowing for the regex engine.
//
// Compiled instructions store class-buffer offsets and repeat bounds as
// uint16. The compiler validates every value against its own limits long
// before narrowing, so an out-of-range conversion here is a programming
// error, not an input error; these helpers panic rather than return one.
package conv

import "math"

// IntToUint16 converts an int to uint16.
// Panics if n < 0 or n > math.MaxUint16.
//
//go:inline
func IntToUint16(n int) uint16 {
	if n < 0 || n > math.MaxUint16 {
		panic("integer overflow: int value out of uint16 range")
	}
	return uint16(n)
}
