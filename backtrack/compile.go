package backtrack

import (
	"github.com/coregx/tinyregex/internal/conv"
)

// Compile translates pattern into a Prog under DefaultConfig.
//
// Compilation is a single left-to-right pass: each construct appends one
// instruction, with quantifiers landing in the slot directly after the
// atom they modify. There is no AST and no optimization pass; what you
// write is the program you get.
func Compile(pattern string) (Prog, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig is Compile with explicit knobs. The config is
// validated first and then baked into the returned Prog.
func CompileWithConfig(pattern string, config Config) (Prog, error) {
	if err := config.Validate(); err != nil {
		return Prog{}, err
	}
	if pattern == "" {
		return Prog{}, &ParseError{Pattern: pattern, Pos: 0, Err: ErrEmptyPattern}
	}
	c := compiler{pattern: pattern}
	c.prog.dotAll = config.DotMatchesNewline
	c.prog.maxRepeat = config.MaxRepeat
	if err := c.run(); err != nil {
		return Prog{}, err
	}
	return c.prog, nil
}

type compiler struct {
	prog    Prog
	pattern string
	pos     int

	// quantifiable records whether the last emitted instruction is an
	// atom a quantifier may attach to. Anchors and quantifiers reset it,
	// which is what makes `*a`, `^*`, and `a**` compile errors.
	quantifiable bool
}

// byteAt returns the pattern byte at i, or 0 past the end. Lookahead
// reads go through here so they need no bounds checks at call sites.
func (c *compiler) byteAt(i int) byte {
	if i < len(c.pattern) {
		return c.pattern[i]
	}
	return 0
}

func (c *compiler) errf(pos int, err error) error {
	return &ParseError{Pattern: c.pattern, Pos: pos, Err: err}
}

// emit appends one instruction, keeping the next slot free for the
// terminating OpMatch. Overflow aborts the compilation; a pattern is
// never silently truncated to fit.
func (c *compiler) emit(in Inst) error {
	if c.prog.n+1 >= MaxProgSize {
		return c.errf(c.pos, ErrProgramTooLarge)
	}
	c.prog.insts[c.prog.n] = in
	c.prog.n++
	return nil
}

func (c *compiler) run() error {
	for c.pos < len(c.pattern) {
		var err error
		switch ch := c.pattern[c.pos]; ch {
		case '^':
			c.quantifiable = false
			err = c.emit(Inst{Op: OpBegin})
		case '$':
			c.quantifiable = false
			err = c.emit(Inst{Op: OpEnd})
		case '.':
			c.quantifiable = true
			err = c.emit(Inst{Op: OpDot})
		case '*':
			err = c.quantifier(OpStar, OpLazyStar)
		case '+':
			err = c.quantifier(OpPlus, OpLazyPlus)
		case '?':
			err = c.quantifier(OpQuest, OpLazyQuest)
		case '{':
			err = c.repeat()
		case '\\':
			err = c.escape()
		case '[':
			err = c.class()
		default:
			c.quantifiable = true
			err = c.emit(Inst{Op: OpChar, Ch: ch})
		}
		if err != nil {
			return err
		}
		c.pos++
	}
	// The reserved slot is already zeroed, and the zero Inst is OpMatch.
	c.prog.insts[c.prog.n] = Inst{Op: OpMatch}
	return nil
}

// quantifier emits the suffix instruction for *, + or ?, switching to the
// lazy opcode when a '?' follows.
func (c *compiler) quantifier(greedy, lazy Op) error {
	if !c.quantifiable {
		return c.errf(c.pos, ErrMissingAtom)
	}
	c.quantifiable = false
	op := greedy
	if c.byteAt(c.pos+1) == '?' {
		c.pos++
		op = lazy
	}
	return c.emit(Inst{Op: op})
}

// repeat parses {m}, {m,} and {m,n}, emitting OpRepeat or OpLazyRepeat
// with the bounds inline. {m} means exactly m, {m,} means m..MaxRepeatBound.
func (c *compiler) repeat() error {
	if !c.quantifiable {
		return c.errf(c.pos, ErrMissingAtom)
	}
	c.quantifiable = false
	start := c.pos
	c.pos++

	min, err := c.repeatBound(start)
	if err != nil {
		return err
	}
	max := min
	if c.byteAt(c.pos) == ',' {
		c.pos++
		if c.byteAt(c.pos) == '}' {
			max = MaxRepeatBound
		} else {
			if max, err = c.repeatBound(start); err != nil {
				return err
			}
			if max < min {
				return c.errf(start, ErrInvalidRepeat)
			}
		}
	}
	if c.byteAt(c.pos) != '}' {
		return c.errf(start, ErrInvalidRepeat)
	}

	op := OpRepeat
	if c.byteAt(c.pos+1) == '?' {
		c.pos++
		op = OpLazyRepeat
	}
	return c.emit(Inst{
		Op:  op,
		Min: conv.IntToUint16(min),
		Max: conv.IntToUint16(max),
	})
}

// repeatBound parses one decimal bound at the cursor. At least one digit
// is required, and the running value is checked against MaxRepeatBound on
// every digit so oversized bounds fail without overflowing.
func (c *compiler) repeatBound(start int) (int, error) {
	val := 0
	digits := 0
	for c.pos < len(c.pattern) {
		ch := c.pattern[c.pos]
		if ch < '0' || ch > '9' {
			break
		}
		val = val*10 + int(ch-'0')
		if val > MaxRepeatBound {
			return 0, c.errf(start, ErrRepeatTooLarge)
		}
		digits++
		c.pos++
	}
	if digits == 0 {
		return 0, c.errf(start, ErrInvalidRepeat)
	}
	return val, nil
}

// escape compiles a backslash sequence: the six shorthand classes map to
// their opcodes, anything else neutralizes to a literal byte.
func (c *compiler) escape() error {
	c.quantifiable = true
	c.pos++
	if c.pos >= len(c.pattern) {
		return c.errf(c.pos-1, ErrDanglingEscape)
	}
	switch ch := c.pattern[c.pos]; ch {
	case 'd':
		return c.emit(Inst{Op: OpDigit})
	case 'D':
		return c.emit(Inst{Op: OpNotDigit})
	case 'w':
		return c.emit(Inst{Op: OpWord})
	case 'W':
		return c.emit(Inst{Op: OpNotWord})
	case 's':
		return c.emit(Inst{Op: OpSpace})
	case 'S':
		return c.emit(Inst{Op: OpNotSpace})
	default:
		return c.emit(Inst{Op: OpChar, Ch: ch})
	}
}

// class compiles [...] and [^...] by encoding the contents into the class
// buffer and emitting an instruction that points at them. Elements are
// encoded in match order: escape pairs keep their backslash only for the
// shorthand letters, a-b triples become ranges when something other than
// ']' follows the dash, and everything else is a literal byte.
//
// The closing ']' is left at the cursor for the main loop to step over. A
// ']' directly after the opening (or after '^') therefore closes an empty
// class: `[]` matches nothing and `[^]` matches any byte.
func (c *compiler) class() error {
	c.quantifiable = true
	start := c.pos
	op := OpClass
	if c.byteAt(c.pos+1) == '^' {
		c.pos++
		op = OpNegClass
	}
	off := c.prog.class.len
	c.pos++
	for c.pos < len(c.pattern) && c.pattern[c.pos] != ']' {
		switch {
		case c.pattern[c.pos] == '\\':
			if c.pos+1 >= len(c.pattern) {
				return c.errf(c.pos, ErrDanglingEscape)
			}
			next := c.pattern[c.pos+1]
			if isClassMeta(next) {
				if !c.prog.class.append('\\', next) {
					return c.errf(start, ErrClassTooLarge)
				}
			} else {
				if !c.prog.class.append(next) {
					return c.errf(start, ErrClassTooLarge)
				}
			}
			c.pos += 2
		case c.pos+2 < len(c.pattern) && c.pattern[c.pos+1] == '-' && c.pattern[c.pos+2] != ']':
			lo, hi := c.pattern[c.pos], c.pattern[c.pos+2]
			if lo > hi {
				return c.errf(c.pos, ErrInvalidRange)
			}
			if !c.prog.class.append(lo, '-', hi) {
				return c.errf(start, ErrClassTooLarge)
			}
			c.pos += 3
		default:
			if !c.prog.class.append(c.pattern[c.pos]) {
				return c.errf(start, ErrClassTooLarge)
			}
			c.pos++
		}
	}
	if c.pos >= len(c.pattern) {
		return c.errf(start, ErrUnterminatedClass)
	}
	c.prog.class.terminate()
	return c.emit(Inst{Op: op, Off: conv.IntToUint16(off)})
}
