// Package backtrack implements a compact backtracking regular expression
// engine built around fixed-capacity compiled programs.
//
// The engine targets constrained environments. A compiled Prog is a
// self-contained value: the instruction array and the class buffer are
// embedded directly in the struct, so neither compilation nor matching
// touches the heap, and a Prog can live on the stack, in a global, or in
// caller-managed storage. The price is the usual backtracking caveat:
// pathological patterns can explore many repetition counts, bounded only
// by the Config.MaxRepeat ceiling.
//
// Grammar (byte oriented, ASCII metacharacters):
//
//	^ $                  start / end anchor
//	.                    any byte except \r and \n (see Config.DotMatchesNewline)
//	x* x+ x?             0+, 1+, 0-or-1 repetitions, greedy
//	x*? x+? x??          lazy variants
//	x{m} x{m,} x{m,n}    bounded repetition, append ? for lazy
//	[abc] [^abc] [a-z]   class, negated class, range
//	\d \D \w \W \s \S    digit / word / space shorthands and negations
//	\X                   literal X for any other X
//
// Matching is leftmost-first: Find reports the match at the smallest
// starting offset, with greedy quantifiers preferring the longest
// repetition count and lazy quantifiers the shortest.
package backtrack

import (
	"fmt"
	"strings"
)

// Capacity constants. These bound every compiled program; patterns that do
// not fit are rejected at compile time, never truncated.
const (
	// MaxProgSize is the instruction capacity of a Prog, including the
	// terminating OpMatch slot.
	MaxProgSize = 64

	// MaxClassBytes is the capacity of the shared class buffer. Each
	// character class stores its encoded contents there, NUL terminated.
	MaxClassBytes = 128

	// MaxRepeatBound is the largest value accepted for m or n in {m,n}.
	// It also serves as the implied upper bound of {m,}.
	MaxRepeatBound = 1024

	// DefaultMaxRepeat is the default ceiling on repetitions explored for
	// * and +. It is deliberately much larger than MaxRepeatBound; see
	// Config.MaxRepeat.
	DefaultMaxRepeat = 40000
)

// Op identifies the kind of an instruction.
//
// The zero value is OpMatch, the program terminator, so a zeroed Prog is a
// valid empty program that matches the empty string at any position.
type Op uint8

const (
	// OpMatch terminates a program; reaching it means the remainder of the
	// program has matched.
	OpMatch Op = iota

	// OpBegin and OpEnd are the ^ and $ anchors.
	OpBegin
	OpEnd

	// Single-byte atoms.
	OpDot   // any byte, minus line terminators unless dotAll
	OpChar  // the literal byte in Ch
	OpClass // class contents start at Off in the class buffer
	OpNegClass
	OpDigit
	OpNotDigit
	OpWord
	OpNotWord
	OpSpace
	OpNotSpace

	// Quantifier suffixes. A quantifier always occupies the slot directly
	// after the atom it modifies; the matcher relies on that adjacency.
	OpQuest
	OpLazyQuest
	OpStar
	OpLazyStar
	OpPlus
	OpLazyPlus
	OpRepeat     // bounds in Min and Max
	OpLazyRepeat // bounds in Min and Max
)

var opNames = [...]string{
	OpMatch:      "Match",
	OpBegin:      "Begin",
	OpEnd:        "End",
	OpDot:        "Dot",
	OpChar:       "Char",
	OpClass:      "Class",
	OpNegClass:   "NegClass",
	OpDigit:      "Digit",
	OpNotDigit:   "NotDigit",
	OpWord:       "Word",
	OpNotWord:    "NotWord",
	OpSpace:      "Space",
	OpNotSpace:   "NotSpace",
	OpQuest:      "Quest",
	OpLazyQuest:  "LazyQuest",
	OpStar:       "Star",
	OpLazyStar:   "LazyStar",
	OpPlus:       "Plus",
	OpLazyPlus:   "LazyPlus",
	OpRepeat:     "Repeat",
	OpLazyRepeat: "LazyRepeat",
}

// String returns the diagnostic name of the opcode.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// IsQuantifier reports whether op is a repetition suffix rather than an
// atom or anchor.
func (op Op) IsQuantifier() bool {
	return op >= OpQuest && op <= OpLazyRepeat
}

// Inst is one compiled instruction: an opcode plus a payload whose fields
// are meaningful only for the matching opcode. OpChar uses Ch, OpClass and
// OpNegClass use Off, OpRepeat and OpLazyRepeat use Min and Max. Keeping
// the repeat bounds inline here, instead of packing them into the shared
// class buffer, removes a whole family of aliasing bugs.
type Inst struct {
	Op  Op
	Ch  byte
	Off uint16
	Min uint16
	Max uint16
}

// classBuffer is an append-only byte region holding the encoded contents
// of every character class in a program. All capacity checking funnels
// through append, which fails closed: once a write would overflow, the
// compilation is abandoned.
type classBuffer struct {
	data [MaxClassBytes]byte
	len  int
}

// append copies bs into the buffer, reserving one byte for the terminator
// of the class currently being written. It reports whether the bytes fit.
func (b *classBuffer) append(bs ...byte) bool {
	if b.len+len(bs) > MaxClassBytes-1 {
		return false
	}
	copy(b.data[b.len:], bs)
	b.len += len(bs)
	return true
}

// terminate closes the current class with a NUL byte. The reservation in
// append guarantees the slot exists.
func (b *classBuffer) terminate() {
	b.data[b.len] = 0
	b.len++
}

// Prog is a compiled pattern: a fixed instruction array plus the class
// buffer its class instructions point into, with the dot semantics and
// repetition ceiling baked in at compile time.
//
// A Prog is plain data. It is immutable after Compile returns, safe for
// concurrent readers without synchronization, copyable by assignment, and
// comparable with ==. Matching performs no heap allocation.
type Prog struct {
	insts     [MaxProgSize]Inst
	n         int // live instructions, excluding the OpMatch terminator
	class     classBuffer
	dotAll    bool
	maxRepeat int
}

// Len returns the number of instructions in the program, excluding the
// terminating OpMatch.
func (p *Prog) Len() int {
	return p.n
}

// Anchored reports whether the program begins with a ^ anchor, in which
// case Find only ever attempts offset 0.
func (p *Prog) Anchored() bool {
	return p.n > 0 && p.insts[0].Op == OpBegin
}

// classString returns the raw encoded contents of the class starting at
// off, without the NUL terminator.
func (p *Prog) classString(off uint16) string {
	start := int(off)
	end := start
	for end < MaxClassBytes && p.class.data[end] != 0 {
		end++
	}
	return string(p.class.data[start:end])
}

// Dump returns a human-readable listing of the program, one instruction
// per line with its payload. The terminating OpMatch is omitted. The
// output is for debugging and tooling only; its exact format is not part
// of any contract.
func (p *Prog) Dump() string {
	var b strings.Builder
	for i := 0; i < p.n; i++ {
		in := p.insts[i]
		fmt.Fprintf(&b, "%2d: %s", i, in.Op)
		switch in.Op {
		case OpChar:
			fmt.Fprintf(&b, " %q", in.Ch)
		case OpClass, OpNegClass:
			fmt.Fprintf(&b, " %q", p.classString(in.Off))
		case OpRepeat, OpLazyRepeat:
			fmt.Fprintf(&b, " {%d,%d}", in.Min, in.Max)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
