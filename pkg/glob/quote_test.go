package glob

import (
	"testing"

	"github.com/es-shell/esmatch/pkg/tt"
)

func TestQuote_IsQuoted(t *testing.T) {
	tt.Test(t, tt.Fn("Quote.IsQuoted", Quote.IsQuoted), tt.Table{
		tt.Args(AllRaw, 0).Rets(false),
		tt.Args(AllRaw, 100).Rets(false),
		tt.Args(AllQuoted, 0).Rets(true),
		tt.Args(AllQuoted, 100).Rets(true),
		tt.Args(ParseFlags("rqr"), 0).Rets(false),
		tt.Args(ParseFlags("rqr"), 1).Rets(true),
		tt.Args(ParseFlags("rqr"), 2).Rets(false),
		// Past the end of the flags.
		tt.Args(ParseFlags("rqq"), 3).Rets(false),
		tt.Args(Quote{}, 0).Rets(false),
	})
}

func TestQuote_Tail(t *testing.T) {
	tt.Test(t, tt.Fn("Quote.Tail", Quote.Tail), tt.Table{
		tt.Args(AllRaw, 3).Rets(AllRaw),
		tt.Args(AllQuoted, 3).Rets(AllQuoted),
		tt.Args(ParseFlags("rqrq"), 1).Rets(ParseFlags("qrq")),
		tt.Args(ParseFlags("rqrq"), 4).Rets(PerChar(nil)),
		tt.Args(ParseFlags("rq"), 9).Rets(PerChar(nil)),
	})
}

func TestQuote_TailSharesFlags(t *testing.T) {
	flags := []Flag{Raw, Raw, Raw}
	tail := PerChar(flags).Tail(1)
	flags[2] = Quoted
	if !tail.IsQuoted(1) {
		t.Errorf("Tail copied the flags instead of sharing them")
	}
}

func TestQuote_String(t *testing.T) {
	tt.Test(t, tt.Fn("Quote.String", Quote.String), tt.Table{
		tt.Args(AllRaw).Rets("raw"),
		tt.Args(AllQuoted).Rets("quoted"),
		tt.Args(ParseFlags("rqxr")).Rets("rqrr"),
		tt.Args(PerChar(nil)).Rets(""),
	})
}
