package glob

// MatchAny reports whether any of the patterns matches any of the subjects.
// The i-th quote annotates the i-th pattern; a missing quote is AllRaw.
//
// An empty list of subjects is matched by an empty list of patterns, and by
// any pattern consisting of one or more raw "*" characters. No other pattern
// matches it, not even the empty pattern.
func MatchAny(subjects, patterns []string, quotes []Quote) bool {
	if len(subjects) == 0 {
		if len(patterns) == 0 {
			return true
		}
		for i, pattern := range patterns {
			if isAllStars(pattern, quoteAt(quotes, i)) {
				return true
			}
		}
		return false
	}
	for i, pattern := range patterns {
		q := quoteAt(quotes, i)
		for _, subject := range subjects {
			if Match(subject, pattern, q) {
				return true
			}
		}
	}
	return false
}

func isAllStars(pattern string, q Quote) bool {
	if pattern == "" || q.kind == allQuoted {
		return false
	}
	i := 0
	for _, r := range pattern {
		if r != '*' || q.IsQuoted(i) {
			return false
		}
		i++
	}
	return true
}

func quoteAt(quotes []Quote, i int) Quote {
	if i < len(quotes) {
		return quotes[i]
	}
	return AllRaw
}
