package mpath

import (
	"github.com/mpath-dev/mpath/glob"
	"github.com/mpath-dev/mpath/token"
)

// MatrixPath is the matrix flavor: named segments with ordered
// attributes, `svc;version=2;beta/ep`.
type MatrixPath = Path[*Element]

// MatrixPatternPath is the predicate path over [MatrixPath]: wildcard
// names and attribute values with literal keys.
type MatrixPatternPath = Path[*PatternElement]

// MatrixKind is the capability bundle of [MatrixPath].
var MatrixKind = &Kind[*Element]{
	Ops:   MatrixOps,
	Equal: (*Element).Equal,
	Append: func(dst []byte, v *Element, ops token.Operators) []byte {
		return v.appendTo(dst, ops)
	},
	Parse: parseElements,
	Skip: func(v *Element) bool {
		return v == nil || (v.Name == "" && len(v.Attrs) == 0)
	},
}

// MatrixPatternKind is the capability bundle of [MatrixPatternPath].
var MatrixPatternKind = &Kind[*PatternElement]{
	Ops:   MatrixPatternOps,
	Equal: (*PatternElement).Equal,
	Append: func(dst []byte, v *PatternElement, ops token.Operators) []byte {
		return v.appendTo(dst, ops)
	},
	Parse: parsePatternElements,
	Skip: func(v *PatternElement) bool {
		if v == nil {
			return true
		}
		if len(v.Attrs) > 0 {
			return false
		}
		if v.Name == nil {
			return true
		}
		lit, ok := v.Name.Literal()
		return ok && lit == ""
	},
}

// ParseMatrix parses s as a matrix path. The only syntax error is `=`
// with no attribute key pending.
func ParseMatrix(s string) (MatrixPath, error) {
	return ParseKind(MatrixKind, s)
}

// ParseMatrixPattern parses s as a matrix pattern path.
func ParseMatrixPattern(s string) (MatrixPatternPath, error) {
	return ParseKind(MatrixPatternKind, s)
}

// FromElements builds a matrix path. Nil and fully empty elements are
// skipped.
func FromElements(elems ...*Element) MatrixPath {
	return Make(MatrixKind, elems...)
}

// FromPatternElements builds a matrix pattern path.
func FromPatternElements(elems ...*PatternElement) MatrixPatternPath {
	return Make(MatrixPatternKind, elems...)
}

func parseElements(s string) ([]*Element, error) {
	runs, err := buildRuns(s, MatrixOps)
	if err != nil {
		return nil, err
	}
	var elems []*Element
	for _, r := range runs {
		e := &Element{Name: runText(r.name)}
		for _, ar := range r.attrs {
			e.setAttr(Attr{
				Key:      runText(ar.key),
				Value:    runText(ar.value),
				HasValue: ar.hasValue,
			})
		}
		elems = append(elems, e)
	}
	return elems, nil
}

func parsePatternElements(s string) ([]*PatternElement, error) {
	runs, err := buildRuns(s, MatrixPatternOps)
	if err != nil {
		return nil, err
	}
	var elems []*PatternElement
	for _, r := range runs {
		pe := &PatternElement{Name: glob.Build(r.name, Esc)}
		for _, ar := range r.attrs {
			pa := PatternAttr{Key: runText(ar.key), HasValue: ar.hasValue}
			if ar.hasValue {
				pa.Value = glob.Build(ar.value, Esc)
			}
			pe.setAttr(pa)
		}
		elems = append(elems, pe)
	}
	return elems, nil
}
