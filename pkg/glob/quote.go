package glob

import "strings"

// Flag marks whether a single pattern character is quoted.
type Flag uint8

const (
	// Raw means the character keeps its wildcard meaning.
	Raw Flag = iota
	// Quoted means the character is always literal.
	Quoted
)

type quoteKind uint8

const (
	allRaw quoteKind = iota
	allQuoted
	perChar
)

// Quote describes which characters of a pattern are quoted. The zero value is
// AllRaw.
//
// A Quote is one of AllRaw, AllQuoted, or a per-character annotation built
// with PerChar. Per-character annotations are indexed by rune position in the
// pattern.
type Quote struct {
	kind  quoteKind
	flags []Flag
}

var (
	// AllRaw is the annotation of a pattern with no quoted characters.
	AllRaw = Quote{kind: allRaw}
	// AllQuoted is the annotation of a pattern that is entirely literal.
	AllQuoted = Quote{kind: allQuoted}
)

// PerChar returns an annotation with one flag per pattern character. The
// slice is retained, not copied.
func PerChar(flags []Flag) Quote {
	return Quote{kind: perChar, flags: flags}
}

// ParseFlags builds a per-character annotation from a string of 'q' (quoted)
// and 'r' (raw) characters. Any other character is treated as 'r'.
func ParseFlags(s string) Quote {
	flags := make([]Flag, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 'q' {
			flags[i] = Quoted
		}
	}
	return PerChar(flags)
}

// IsQuoted reports whether the character at position i is quoted. Positions
// past the end of a per-character annotation read as raw.
func (q Quote) IsQuoted(i int) bool {
	switch q.kind {
	case allQuoted:
		return true
	case perChar:
		return i < len(q.flags) && q.flags[i] == Quoted
	default:
		return false
	}
}

// Tail returns the annotation for the pattern suffix starting at position i.
// It does not copy.
func (q Quote) Tail(i int) Quote {
	if q.kind != perChar {
		return q
	}
	if i >= len(q.flags) {
		return PerChar(nil)
	}
	return PerChar(q.flags[i:])
}

func (q Quote) String() string {
	switch q.kind {
	case allQuoted:
		return "quoted"
	case perChar:
		var sb strings.Builder
		for _, f := range q.flags {
			if f == Quoted {
				sb.WriteByte('q')
			} else {
				sb.WriteByte('r')
			}
		}
		return sb.String()
	default:
		return "raw"
	}
}
