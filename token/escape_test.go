package token

import (
	"testing"
)

type escTest struct {
	in, out string
}

func TestEscaped(t *testing.T) {
	ops := NewOperators('\\', '/', ';', '=')
	var ets = []escTest{
		{in: "abc", out: "abc"},
		{in: "a/b", out: `a\/b`},
		{in: `a\b`, out: `a\\b`},
		{in: "k=v;x", out: `k\=v\;x`},
		{in: "", out: ""},
		{in: `\`, out: `\\`},
	}
	for _, et := range ets {
		if got := Escaped(et.in, ops); got != et.out {
			t.Errorf("Escaped(%q) = %q want %q", et.in, got, et.out)
		}
	}
}

func TestUnescapeRoundTrip(t *testing.T) {
	ops := NewOperators('\\', '/', ';', '=')
	ins := []string{
		"",
		"abc",
		"a/b",
		`a\b`,
		`\\//`,
		"k=v;x=y",
		`tricky\=;/\`,
		"日/本",
	}
	for _, in := range ins {
		esc := Escaped(in, ops)
		if got := Unescape(esc, ops); got != in {
			t.Errorf("Unescape(Escaped(%q)) = %q", in, got)
		}
	}
}

func TestUnescapeLoose(t *testing.T) {
	// inputs that Escaped never produces still unescape sensibly
	ops := NewOperators('\\', '/')
	var ets = []escTest{
		{in: `a\bc`, out: "abc"},
		{in: `ab\`, out: `ab\`},
		{in: "a/b", out: "a/b"},
	}
	for _, et := range ets {
		if got := Unescape(et.in, ops); got != et.out {
			t.Errorf("Unescape(%q) = %q want %q", et.in, got, et.out)
		}
	}
}

func TestFold(t *testing.T) {
	ops := NewOperators('\\', '/')
	f := ops.Fold()
	if f.Escape() != 0 {
		t.Errorf("folded escape = %q want 0", f.Escape())
	}
	if !f.Has('\\') || !f.Has('/') {
		t.Errorf("folded set missing operators: %q", f.Bytes())
	}
	if ops.Has('\\') {
		t.Errorf("Fold mutated receiver")
	}
}
