package backtrack

// input abstracts the two text representations the matcher accepts, so
// the string API does not pay for a []byte conversion.
type input interface {
	~string | ~[]byte
}

// Find returns the leftmost match of p in text as a [start, end) byte
// range. The scan tries every starting offset from 0 through len(text),
// inclusive, so a pattern that matches the empty string matches even in
// empty text. A program starting with ^ is only tried at offset 0.
//
// ok is false when there is no match; that is a result, not an error.
func (p *Prog) Find(text []byte) (start, end int, ok bool) {
	return find(p, text)
}

// FindString is Find for string input.
func (p *Prog) FindString(text string) (start, end int, ok bool) {
	return find(p, text)
}

// Match reports whether text contains any match of p.
func (p *Prog) Match(text []byte) bool {
	_, _, ok := find(p, text)
	return ok
}

// MatchString is Match for string input.
func (p *Prog) MatchString(text string) bool {
	_, _, ok := find(p, text)
	return ok
}

// MatchAt attempts a single match pinned at pos, returning the end offset
// on success. A leading ^ is skipped: the caller has already chosen the
// start, so the anchor has nothing left to say. Positions outside
// [0, len(text)] never match.
func (p *Prog) MatchAt(text []byte, pos int) (end int, ok bool) {
	if pos < 0 || pos > len(text) {
		return 0, false
	}
	pc := 0
	if p.insts[0].Op == OpBegin {
		pc = 1
	}
	return matchHere(p, pc, text, pos)
}

func find[T input](p *Prog, text T) (start, end int, ok bool) {
	if p.insts[0].Op == OpBegin {
		if e, ok := matchHere(p, 1, text, 0); ok {
			return 0, e, true
		}
		return 0, 0, false
	}
	for s := 0; s <= len(text); s++ {
		if e, ok := matchHere(p, 0, text, s); ok {
			return s, e, true
		}
	}
	return 0, 0, false
}

// matchHere runs the program from pc against text starting at pos.
//
// The loop peeks one instruction ahead: when the next slot holds a
// quantifier, the current atom is handed to the repetition matchers along
// with the bounds, and they recurse into the remainder at pc+2. Plain
// atoms consume a single byte. OpEnd succeeds only at end of text and
// only as the final instruction; anywhere else it falls through to
// matchOne and fails, as does a mid-program OpBegin.
func matchHere[T input](p *Prog, pc int, text T, pos int) (int, bool) {
	for {
		in := p.insts[pc]
		if in.Op == OpMatch {
			return pos, true
		}
		if in.Op == OpEnd && p.insts[pc+1].Op == OpMatch {
			if pos == len(text) {
				return pos, true
			}
			return 0, false
		}
		switch next := p.insts[pc+1]; next.Op {
		case OpQuest:
			return matchGreedy(p, pc, text, pos, 0, 1)
		case OpLazyQuest:
			return matchLazy(p, pc, text, pos, 0, 1)
		case OpStar:
			return matchGreedy(p, pc, text, pos, 0, p.maxRepeat)
		case OpLazyStar:
			return matchLazy(p, pc, text, pos, 0, p.maxRepeat)
		case OpPlus:
			return matchGreedy(p, pc, text, pos, 1, p.maxRepeat)
		case OpLazyPlus:
			return matchLazy(p, pc, text, pos, 1, p.maxRepeat)
		case OpRepeat:
			return matchGreedy(p, pc, text, pos, int(next.Min), int(next.Max))
		case OpLazyRepeat:
			return matchLazy(p, pc, text, pos, int(next.Min), int(next.Max))
		}
		if pos >= len(text) || !p.matchOne(in, text[pos]) {
			return 0, false
		}
		pc++
		pos++
	}
}

// matchGreedy matches the atom at pc between min and max times, longest
// first: it consumes as many bytes as the atom allows, then backs off one
// repetition at a time until the rest of the program matches.
func matchGreedy[T input](p *Prog, pc int, text T, pos, min, max int) (int, bool) {
	if max > p.maxRepeat {
		max = p.maxRepeat
	}
	atom := p.insts[pc]
	count := 0
	for count < max && pos+count < len(text) && p.matchOne(atom, text[pos+count]) {
		count++
	}
	for count >= min {
		if end, ok := matchHere(p, pc+2, text, pos+count); ok {
			return end, true
		}
		count--
	}
	return 0, false
}

// matchLazy is the shortest-first counterpart: it consumes the mandatory
// min repetitions, then grows by one byte only when the rest of the
// program fails at the current length.
func matchLazy[T input](p *Prog, pc int, text T, pos, min, max int) (int, bool) {
	if max > p.maxRepeat {
		max = p.maxRepeat
	}
	if max < min {
		return 0, false
	}
	atom := p.insts[pc]
	for ; min > 0; min-- {
		if pos >= len(text) || !p.matchOne(atom, text[pos]) {
			return 0, false
		}
		pos++
		max--
	}
	for {
		if end, ok := matchHere(p, pc+2, text, pos); ok {
			return end, true
		}
		if max == 0 || pos >= len(text) || !p.matchOne(atom, text[pos]) {
			return 0, false
		}
		pos++
		max--
	}
}

// matchOne reports whether a single atom matches byte c. Opcodes that are
// not single-byte atoms (anchors in the middle of a program, stray
// quantifiers) match nothing.
func (p *Prog) matchOne(in Inst, c byte) bool {
	switch in.Op {
	case OpChar:
		return in.Ch == c
	case OpDot:
		return p.dotAll || (c != '\n' && c != '\r')
	case OpClass:
		return p.matchClass(in.Off, c)
	case OpNegClass:
		return !p.matchClass(in.Off, c)
	case OpDigit:
		return isDigit(c)
	case OpNotDigit:
		return !isDigit(c)
	case OpWord:
		return isWordChar(c)
	case OpNotWord:
		return !isWordChar(c)
	case OpSpace:
		return isSpace(c)
	case OpNotSpace:
		return !isSpace(c)
	default:
		return false
	}
}
