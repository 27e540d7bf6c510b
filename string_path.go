package mpath

import (
	"github.com/mpath-dev/mpath/token"
)

// StringPath is the plain flavor: string segments joined by `/`.
type StringPath = Path[string]

// StringKind is the capability bundle of [StringPath].
var StringKind = &Kind[string]{
	Ops:   StringOps,
	Equal: func(a, b string) bool { return a == b },
	Append: func(dst []byte, v string, ops token.Operators) []byte {
		return token.AppendEscaped(dst, v, ops)
	},
	Parse: parseStrings,
	Skip:  func(v string) bool { return v == "" },
}

// Parse parses s as a string path. Parsing is total: operator bytes
// can be escaped and consecutive delimiters absorb.
func Parse(s string) StringPath {
	p, _ := ParseKind(StringKind, s)
	return p
}

// From builds a string path from raw, unescaped segments. Empty
// segments are skipped: they have no string form.
func From(segs ...string) StringPath {
	return Make(StringKind, segs...)
}

func parseStrings(s string) ([]string, error) {
	toks := token.Tokenize(s, StringOps)
	var segs []string
	for i := range toks {
		if toks[i].Type == token.Literal {
			segs = append(segs, toks[i].Text)
		}
	}
	return segs, nil
}
