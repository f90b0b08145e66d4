package backtrack

// Byte predicates backing the shorthand classes. The engine is byte
// oriented, so these are the ASCII definitions applied to raw bytes;
// multi-byte encodings are matched bytewise.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return c == '_' || isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isClassMeta reports whether an escaped byte keeps its backslash when
// copied into the class buffer. Everything else collapses to the bare
// byte, so inside a class `\.` stores '.' and `\-` stores '-'.
func isClassMeta(c byte) bool {
	switch c {
	case 'd', 'D', 'w', 'W', 's', 'S', '\\':
		return true
	}
	return false
}

// matchMeta interprets the byte following a backslash in the class buffer
// against c. Bytes outside the shorthand set compare literally; that is
// how an escaped backslash in a class matches itself.
func matchMeta(c, meta byte) bool {
	switch meta {
	case 'd':
		return isDigit(c)
	case 'D':
		return !isDigit(c)
	case 'w':
		return isWordChar(c)
	case 'W':
		return !isWordChar(c)
	case 's':
		return isSpace(c)
	case 'S':
		return !isSpace(c)
	default:
		return c == meta
	}
}

// matchClass reports whether c is in the class whose encoded contents
// start at off in the class buffer. The encoding is a NUL-terminated
// sequence of three element kinds: a backslash pair, a lo-'-'-hi range
// triple, or a single literal byte. A '-' counts as a range only when a
// non-NUL byte follows it, so a trailing dash is a literal.
//
// An empty class contains no bytes at all; negation is the caller's job.
// Out-of-range offsets and truncated elements match nothing.
func (p *Prog) matchClass(off uint16, c byte) bool {
	i := int(off)
	for i < MaxClassBytes && p.class.data[i] != 0 {
		switch {
		case p.class.data[i] == '\\':
			if i+1 >= MaxClassBytes || p.class.data[i+1] == 0 {
				return false
			}
			if matchMeta(c, p.class.data[i+1]) {
				return true
			}
			i += 2
		case i+2 < MaxClassBytes && p.class.data[i+1] == '-' && p.class.data[i+2] != 0:
			if c >= p.class.data[i] && c <= p.class.data[i+2] {
				return true
			}
			i += 3
		default:
			if c == p.class.data[i] {
				return true
			}
			i++
		}
	}
	return false
}
