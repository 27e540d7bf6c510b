package mpath

import (
	"github.com/mpath-dev/mpath/glob"
	"github.com/mpath-dev/mpath/token"
)

// PatternPath is the wildcard flavor: glob segments joined by `/`.
// A PatternPath is a predicate path over [StringPath], see [Matches].
type PatternPath = Path[*glob.Pattern]

// PatternKind is the capability bundle of [PatternPath].
var PatternKind = &Kind[*glob.Pattern]{
	Ops:   PatternOps,
	Equal: (*glob.Pattern).Equal,
	Append: func(dst []byte, v *glob.Pattern, ops token.Operators) []byte {
		return v.AppendRender(dst, ops)
	},
	Parse: parsePatterns,
	Skip: func(v *glob.Pattern) bool {
		if v == nil {
			return true
		}
		lit, ok := v.Literal()
		return ok && lit == ""
	},
}

// ParsePattern parses s as a pattern path. Parsing is total.
func ParsePattern(s string) PatternPath {
	p, _ := ParseKind(PatternKind, s)
	return p
}

// FromPatterns builds a pattern path from compiled patterns. Nil and
// empty patterns are skipped.
func FromPatterns(pats ...*glob.Pattern) PatternPath {
	return Make(PatternKind, pats...)
}

func parsePatterns(s string) ([]*glob.Pattern, error) {
	var (
		toks = token.Tokenize(s, PatternOps)
		pats []*glob.Pattern
		run  []token.Token
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		pats = append(pats, glob.Build(run, Esc))
		run = run[:0]
	}
	for i := range toks {
		t := toks[i]
		if t.Type == token.Operator && t.Op == Delim {
			flush()
			continue
		}
		run = append(run, t)
	}
	flush()
	return pats, nil
}
