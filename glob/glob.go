// Package glob implements the wildcard patterns used in pattern paths.
//
// A pattern is compiled once and then tested against many strings.
// `*` matches any run including the empty run, `?` matches exactly
// one rune, and the escape byte makes the following byte literal.
package glob

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mpath-dev/mpath/token"
)

type partKind int

const (
	partLit partKind = iota
	partStar
	partAny
)

// Pattern is a compiled wildcard pattern. Patterns are immutable and
// safe for concurrent use.
type Pattern struct {
	esc   byte
	parts []part
}

type part struct {
	kind partKind
	lit  string
}

// Compile parses src, treating `*` and `?` as wildcards unless escaped
// with esc. The returned error is currently always nil.
func Compile(src string, esc byte) (*Pattern, error) {
	toks := token.Tokenize(src, token.NewOperators(esc, '*', '?'))
	return Build(toks, esc), nil
}

func MustCompile(src string, esc byte) *Pattern {
	p, err := Compile(src, esc)
	if err != nil {
		panic(err)
	}
	return p
}

// Build assembles a pattern from tokens already classified by a path
// tokenizer: `*` and `?` operator tokens become wildcards, literal
// tokens become literal parts.
func Build(toks []token.Token, esc byte) *Pattern {
	p := &Pattern{esc: esc}
	for i := range toks {
		t := &toks[i]
		if t.Type == token.Literal {
			p.parts = append(p.parts, part{kind: partLit, lit: t.Text})
			continue
		}
		switch t.Op {
		case '*':
			p.parts = append(p.parts, part{kind: partStar})
		case '?':
			p.parts = append(p.parts, part{kind: partAny})
		default:
			panic(fmt.Sprintf("glob: unexpected operator %q", t.Op))
		}
	}
	return p
}

// Match reports whether s matches the pattern. `*` backtracks over
// runs, `?` consumes one rune.
func (p *Pattern) Match(s string) bool {
	var (
		parts          = p.parts
		pi, si         int
		starPi, starSi = -1, 0
	)
	for si < len(s) || pi < len(parts) {
		if pi < len(parts) {
			switch pt := &parts[pi]; pt.kind {
			case partStar:
				starPi, starSi = pi, si
				pi++
				continue
			case partAny:
				if si < len(s) {
					_, sz := utf8.DecodeRuneInString(s[si:])
					si += sz
					pi++
					continue
				}
			case partLit:
				if strings.HasPrefix(s[si:], pt.lit) {
					si += len(pt.lit)
					pi++
					continue
				}
			}
		}
		if starPi >= 0 && starSi < len(s) {
			_, sz := utf8.DecodeRuneInString(s[starSi:])
			starSi += sz
			si, pi = starSi, starPi+1
			continue
		}
		return false
	}
	return true
}

// Equal reports structural equality of the two patterns. `a**` and
// `a*` are not equal even though they match the same strings.
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.parts) != len(o.parts) {
		return false
	}
	for i := range p.parts {
		if p.parts[i] != o.parts[i] {
			return false
		}
	}
	return true
}

// Literal returns the pattern text and true when the pattern contains
// no wildcards.
func (p *Pattern) Literal() (string, bool) {
	var b strings.Builder
	for i := range p.parts {
		if p.parts[i].kind != partLit {
			return "", false
		}
		b.WriteString(p.parts[i].lit)
	}
	return b.String(), true
}

// AppendRender appends the pattern to dst with literal parts escaped
// for ops. Wildcards render bare, so ops must contain `*` and `?`.
func (p *Pattern) AppendRender(dst []byte, ops token.Operators) []byte {
	for i := range p.parts {
		switch pt := &p.parts[i]; pt.kind {
		case partStar:
			dst = append(dst, '*')
		case partAny:
			dst = append(dst, '?')
		case partLit:
			dst = token.AppendEscaped(dst, pt.lit, ops)
		}
	}
	return dst
}

func (p *Pattern) String() string {
	return string(p.AppendRender(nil, token.NewOperators(p.esc, '*', '?')))
}
