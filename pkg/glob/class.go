package glob

import "errors"

// ErrBadClass is returned by the class matcher when a "[" is not closed by a
// raw "]". The matchers never let it escape: such a "[" either matches a
// literal "[" in the subject or fails the match.
var ErrBadClass = errors.New("unterminated character class")

// matchClass matches c against the character class p, which starts just after
// the opening "[". The quote q is aligned with p.
//
// On a match it returns true and the offset one past the closing "]". A
// well-formed class that does not contain c yields false and a nil error.
//
// A leading "~" negates the class. A "]" right after the optional "~" is a
// member, not the terminator. In "x-y", the "-" forms a range unless it is
// quoted or followed by the terminating "]" or the end of the pattern, so
// "[a-]" contains "a" and "-".
func matchClass(p []rune, q Quote, c rune) (bool, int, error) {
	i := 0
	negated := false
	if i < len(p) && p[i] == '~' && !q.IsQuoted(i) {
		negated = true
		i++
	}
	matched := false
	if i < len(p) && p[i] == ']' && !q.IsQuoted(i) {
		matched = c == ']'
		i++
	}
	for ; ; i++ {
		if i >= len(p) {
			return false, 0, ErrBadClass
		}
		if p[i] == ']' && !q.IsQuoted(i) {
			break
		}
		if isRange(p, q, i) {
			if p[i] <= c && c <= p[i+2] {
				matched = true
			}
			i += 2
		} else if p[i] == c {
			matched = true
		}
	}
	if matched != negated {
		return true, i + 1, nil
	}
	return false, 0, nil
}

// isRange reports whether p[i] starts a range like "a-z".
func isRange(p []rune, q Quote, i int) bool {
	if i+2 >= len(p) || p[i+1] != '-' || q.IsQuoted(i+1) {
		return false
	}
	return p[i+2] != ']' || q.IsQuoted(i+2)
}
