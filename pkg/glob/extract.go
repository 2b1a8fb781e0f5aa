package glob

// HasWild reports whether pattern contains a raw "?", "*" or "[".
func HasWild(pattern string, q Quote) bool {
	if q.kind == allQuoted {
		return false
	}
	return hasWild([]rune(pattern), q)
}

func hasWild(p []rune, q Quote) bool {
	for i, r := range p {
		switch r {
		case '?', '*', '[':
			if !q.IsQuoted(i) {
				return true
			}
		}
	}
	return false
}

// Extract returns the parts of subject consumed by the wildcards of pattern,
// from left to right. Each "?" and each class contributes one character, and
// each "*" contributes the (possibly empty) text it spans.
//
// The second return value is false when pattern has no wildcards, does not
// match subject, or captures nothing because its only wildcard is a "[" that
// matched itself literally. A successful result is never empty.
func Extract(subject, pattern string, q Quote) ([]string, bool) {
	if !HasWild(pattern, q) || !Match(subject, pattern, q) {
		return nil, false
	}
	fragments := extract([]rune(subject), []rune(pattern), q, nil)
	if len(fragments) == 0 {
		return nil, false
	}
	return fragments, true
}

// extract appends the fragments of s captured by p to out. It requires s to
// match p.
func extract(s, p []rune, q Quote, out []string) []string {
	si := 0
	for pi := 0; pi < len(p); si++ {
		if q.IsQuoted(pi) {
			pi++
			continue
		}
		c := p[pi]
		pi++
		switch c {
		case '*':
			if pi == len(p) {
				return append(out, string(s[si:]))
			}
			rest, restQuote := p[pi:], q.Tail(pi)
			for begin := si; si <= len(s); si++ {
				if matchRunes(s[si:], rest, restQuote) {
					out = append(out, string(s[begin:si]))
					if hasWild(rest, restQuote) {
						return extract(s[si:], rest, restQuote, out)
					}
					return out
				}
			}
			panic("extract called on a subject that does not match")
		case '[':
			ok, n, err := matchClass(p[pi:], q.Tail(pi), s[si])
			if err != nil {
				// A literal "[".
				continue
			}
			if !ok {
				panic("extract called on a subject that does not match")
			}
			pi += n
			out = append(out, string(s[si]))
		case '?':
			out = append(out, string(s[si]))
		}
	}
	return out
}

// ExtractAll extracts from each subject with the first pattern that matches
// it, and concatenates the results in the order of subjects. Subjects that
// match no pattern contribute nothing. The i-th quote annotates the i-th
// pattern; a missing quote is AllRaw.
func ExtractAll(subjects, patterns []string, quotes []Quote) []string {
	var result []string
	for _, subject := range subjects {
		for i, pattern := range patterns {
			if fragments, ok := Extract(subject, pattern, quoteAt(quotes, i)); ok {
				result = append(result, fragments...)
				break
			}
		}
	}
	return result
}
