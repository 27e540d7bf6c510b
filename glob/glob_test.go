package glob

import (
	"testing"
)

type matchTest struct {
	pat, in string
	want    bool
}

func TestMatch(t *testing.T) {
	var mts = []matchTest{
		{pat: "", in: "", want: true},
		{pat: "", in: "a", want: false},
		{pat: "abc", in: "abc", want: true},
		{pat: "abc", in: "abd", want: false},
		{pat: "*", in: "", want: true},
		{pat: "*", in: "anything", want: true},
		{pat: "a*", in: "a", want: true},
		{pat: "a*", in: "abc", want: true},
		{pat: "a*", in: "ba", want: false},
		{pat: "*c", in: "abc", want: true},
		{pat: "a*c", in: "abbbc", want: true},
		{pat: "a*c", in: "ab", want: false},
		{pat: "a**", in: "a", want: true},
		{pat: "a**", in: "abc", want: true},
		{pat: "?", in: "x", want: true},
		{pat: "?", in: "", want: false},
		{pat: "?", in: "xy", want: false},
		{pat: "?", in: "語", want: true},
		{pat: "a?c", in: "abc", want: true},
		{pat: "a?c", in: "a語c", want: true},
		{pat: "gr*", in: "green", want: true},
		{pat: "gr*", in: "gray", want: true},
		{pat: "gr*", in: "blue", want: false},
		{pat: "*a*b*", in: "xaxbx", want: true},
		{pat: "*a*b*", in: "xbxax", want: false},
		{pat: `\*`, in: "*", want: true},
		{pat: `\*`, in: "x", want: false},
		{pat: `\?`, in: "?", want: true},
		{pat: `a\*b`, in: "a*b", want: true},
		{pat: `a\*b`, in: "axb", want: false},
	}
	for _, mt := range mts {
		p := MustCompile(mt.pat, '\\')
		if got := p.Match(mt.in); got != mt.want {
			t.Errorf("Match(%q, %q) = %v want %v", mt.pat, mt.in, got, mt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := MustCompile("a*c?", '\\')
	b := MustCompile("a*c?", '\\')
	c := MustCompile("a**c?", '\\')
	if !a.Equal(b) {
		t.Errorf("equal patterns not Equal")
	}
	if a.Equal(c) {
		t.Errorf("a* and a** compare Equal")
	}
}

func TestLiteral(t *testing.T) {
	p := MustCompile(`ab\*c`, '\\')
	lit, ok := p.Literal()
	if !ok || lit != "ab*c" {
		t.Errorf("Literal() = %q, %v", lit, ok)
	}
	if _, ok := MustCompile("ab*", '\\').Literal(); ok {
		t.Errorf("wildcard pattern reported literal")
	}
}

func TestStringRoundTrip(t *testing.T) {
	srcs := []string{"", "abc", "a*c", "a**", "a?c", `\*lit\?`, "gr*"}
	for _, src := range srcs {
		p := MustCompile(src, '\\')
		again := MustCompile(p.String(), '\\')
		if !p.Equal(again) {
			t.Errorf("recompile of %q -> %q not Equal", src, p.String())
		}
	}
}
