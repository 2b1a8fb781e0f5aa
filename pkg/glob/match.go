// Package glob implements wildcard matching for the shell.
//
// A pattern is a string together with a Quote that says which of its
// characters are quoted. Unquoted (raw) characters may be wildcards:
//
//   - "?" matches exactly one character.
//   - "*" matches any sequence of characters, including the empty one.
//   - "[...]" matches one character against a class. A leading "~" negates the
//     class, and "a-z" denotes an inclusive range.
//
// Quoted characters always match themselves. Match answers whether a word
// matches a pattern, MatchAny does the same for lists of words and patterns,
// and Extract and ExtractAll recover the text consumed by each wildcard.
package glob

// Match reports whether subject matches pattern annotated with q.
func Match(subject, pattern string, q Quote) bool {
	if q.kind == allQuoted {
		return subject == pattern
	}
	return matchRunes([]rune(subject), []rune(pattern), q)
}

func matchRunes(s, p []rune, q Quote) bool {
	m := &matcher{s: s, p: p, q: q}
	return m.match(0, 0)
}

// matcher holds the state of a single match call.
type matcher struct {
	s, p []rune
	q    Quote
	// Pairs of (subject offset, pattern offset) already known not to match.
	// Only star backtracking records and consults them.
	failed map[[2]int]struct{}
}

func (m *matcher) match(si, pi int) bool {
	s, p, q := m.s, m.p, m.q
	for pi < len(p) {
		c := p[pi]
		if q.IsQuoted(pi) {
			if si >= len(s) || s[si] != c {
				return false
			}
			si++
			pi++
			continue
		}
		switch c {
		case '?':
			if si >= len(s) {
				return false
			}
			si++
			pi++
		case '*':
			pi++
			// Collapse a run of stars.
			for pi < len(p) && p[pi] == '*' && !q.IsQuoted(pi) {
				pi++
			}
			if pi == len(p) {
				return true
			}
			for ; si <= len(s); si++ {
				if m.matchAt(si, pi) {
					return true
				}
			}
			return false
		case '[':
			if si >= len(s) {
				return false
			}
			ok, n, err := matchClass(p[pi+1:], q.Tail(pi+1), s[si])
			switch {
			case err != nil:
				// Not a class after all; "[" can still match itself.
				if s[si] != '[' {
					return false
				}
				pi++
			case !ok:
				return false
			default:
				pi += 1 + n
			}
			si++
		default:
			if si >= len(s) || s[si] != c {
				return false
			}
			si++
			pi++
		}
	}
	return si == len(s)
}

// matchAt is like match, but remembers failures.
func (m *matcher) matchAt(si, pi int) bool {
	key := [2]int{si, pi}
	if _, ok := m.failed[key]; ok {
		return false
	}
	if m.match(si, pi) {
		return true
	}
	if m.failed == nil {
		m.failed = make(map[[2]int]struct{})
	}
	m.failed[key] = struct{}{}
	return false
}
