package glob

import (
	"strings"
	"unicode/utf8"
)

// Pattern is a pattern string together with its quote annotation.
type Pattern struct {
	Text  string
	Quote Quote
}

// Match reports whether subject matches the pattern.
func (p Pattern) Match(subject string) bool { return Match(subject, p.Text, p.Quote) }

// Extract is like the Extract function.
func (p Pattern) Extract(subject string) ([]string, bool) {
	return Extract(subject, p.Text, p.Quote)
}

// HasWild reports whether the pattern contains any raw wildcard.
func (p Pattern) HasWild() bool { return HasWild(p.Text, p.Quote) }

func (p Pattern) String() string { return p.Text + " (" + p.Quote.String() + ")" }

// Split returns the texts and quotes of the patterns as two parallel lists,
// the form MatchAny and ExtractAll take.
func Split(ps []Pattern) ([]string, []Quote) {
	texts := make([]string, len(ps))
	quotes := make([]Quote, len(ps))
	for i, p := range ps {
		texts[i], quotes[i] = p.Text, p.Quote
	}
	return texts, quotes
}

// Parse parses a word written with shell quoting into a pattern. Text inside
// single quotes is quoted, with "''" standing for a literal single quote. A
// backslash quotes the character after it; a trailing backslash is itself a
// quoted backslash. An unterminated single quote extends to the end of the
// word.
func Parse(word string) Pattern {
	var text strings.Builder
	var flags []Flag
	nQuoted := 0
	add := func(r rune, f Flag) {
		text.WriteRune(r)
		flags = append(flags, f)
		if f == Quoted {
			nQuoted++
		}
	}
	p := &parser{word, 0, 0}

rune:
	for {
		r := p.next()
		switch r {
		case eof:
			break rune
		case '\\':
			r = p.next()
			if r == eof {
				add('\\', Quoted)
				break rune
			}
			add(r, Quoted)
		case '\'':
		quoted:
			for {
				r = p.next()
				switch r {
				case eof:
					break rune
				case '\'':
					if p.next() != '\'' {
						p.backup()
						break quoted
					}
				}
				add(r, Quoted)
			}
		default:
			add(r, Raw)
		}
	}

	var q Quote
	switch {
	case nQuoted == 0:
		q = AllRaw
	case nQuoted == len(flags):
		q = AllQuoted
	default:
		q = PerChar(flags)
	}
	return Pattern{text.String(), q}
}

type parser struct {
	src     string
	pos     int
	overEOF int
}

const eof rune = -1

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		ps.overEOF++
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) backup() {
	if ps.overEOF > 0 {
		ps.overEOF--
		return
	}
	_, s := utf8.DecodeLastRuneInString(ps.src[:ps.pos])
	ps.pos -= s
}
