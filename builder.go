package mpath

import (
	"strings"

	"github.com/mpath-dev/mpath/debug"
	"github.com/mpath-dev/mpath/token"
)

// bState drives matrix element assembly.
type bState int

const (
	bName bState = iota
	bAttrKey
	bAttrValue
)

func (s bState) String() string {
	return map[bState]string{
		bName:      "name",
		bAttrKey:   "attr-key",
		bAttrValue: "attr-value",
	}[s]
}

// segRun is one segment as token runs, before flavor assembly turns
// the runs into elements.
type segRun struct {
	name  []token.Token
	attrs []attrRun
}

type attrRun struct {
	key      []token.Token
	value    []token.Token
	hasValue bool
}

// buildRuns tokenizes s with ops and groups the tokens into segment
// runs. `/`, `;` and `=` are structural; any other operator token
// (the wildcards of the pattern flavor) joins the current run. Fully
// empty segments between consecutive delimiters absorb, as do `;`
// runs with no key. The only error is `=` with no attribute key
// pending.
func buildRuns(s string, ops token.Operators) ([]segRun, error) {
	var (
		runs  []segRun
		cur   segRun
		attr  attrRun
		state = bName
	)
	flushAttr := func() {
		if state == bName {
			return
		}
		if len(attr.key) == 0 {
			attr = attrRun{}
			return
		}
		cur.attrs = append(cur.attrs, attr)
		attr = attrRun{}
	}
	flushSeg := func() {
		flushAttr()
		if len(cur.name) > 0 || len(cur.attrs) > 0 {
			runs = append(runs, cur)
		}
		cur = segRun{}
		state = bName
	}
	toks := token.Tokenize(s, ops)
	for i := range toks {
		t := toks[i]
		if t.Type == token.Operator {
			switch t.Op {
			case Delim:
				flushSeg()
				continue
			case AttrDelim:
				flushAttr()
				state = bAttrKey
				continue
			case AttrEq:
				if state != bAttrKey || len(attr.key) == 0 {
					if debug.Parse() {
						debug.Logf("builder: '=' in state %s at offset %d\n", state, t.Pos.Off)
					}
					return nil, unexpectedErr("'='", t.Pos)
				}
				attr.hasValue = true
				state = bAttrValue
				continue
			}
		}
		switch state {
		case bName:
			cur.name = append(cur.name, t)
		case bAttrKey:
			attr.key = append(attr.key, t)
		case bAttrValue:
			attr.value = append(attr.value, t)
		}
	}
	flushSeg()
	return runs, nil
}

// runText concatenates a token run into raw text. Wildcard operator
// bytes read as themselves, so a `*` in key position of a pattern
// path is the literal byte.
func runText(toks []token.Token) string {
	if len(toks) == 1 && toks[0].Type == token.Literal {
		return toks[0].Text
	}
	var sb strings.Builder
	for i := range toks {
		sb.WriteString(toks[i].String())
	}
	return sb.String()
}
