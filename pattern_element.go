package mpath

import (
	"github.com/mpath-dev/mpath/glob"
	"github.com/mpath-dev/mpath/token"
)

// PatternAttr constrains one attribute: a literal key carrying either
// a bare flag requirement or a value pattern.
type PatternAttr struct {
	Key      string
	Value    *glob.Pattern
	HasValue bool
}

func NewPatternAttr(key string, value *glob.Pattern) PatternAttr {
	return PatternAttr{Key: key, Value: value, HasValue: true}
}

func NewPatternFlag(key string) PatternAttr {
	return PatternAttr{Key: key}
}

// PatternElement matches matrix elements. A nil Name matches any
// name. A PatternElement is a Predicate[*Element], see [Matches].
type PatternElement struct {
	Name  *glob.Pattern
	Attrs []PatternAttr
}

// NewPatternElement builds a pattern element, applying the duplicate
// key rule. A nil name becomes the match-anything pattern `*`, so
// constructed elements round-trip through their string form.
func NewPatternElement(name *glob.Pattern, attrs ...PatternAttr) *PatternElement {
	if name == nil {
		name = glob.MustCompile("*", Esc)
	}
	pe := &PatternElement{Name: name}
	for _, a := range attrs {
		pe.setAttr(a)
	}
	return pe
}

func (pe *PatternElement) setAttr(a PatternAttr) {
	for i := range pe.Attrs {
		if pe.Attrs[i].Key == a.Key {
			pe.Attrs[i] = a
			return
		}
	}
	pe.Attrs = append(pe.Attrs, a)
}

// Match reports whether e satisfies every constraint: the name
// pattern matches e's name, each pattern attribute's key is present
// on e, a bare constraint finds a bare flag, and a valued constraint
// finds a value matching its pattern. Attributes of e with no
// constraint are ignored.
func (pe *PatternElement) Match(e *Element) bool {
	if e == nil {
		return false
	}
	if pe.Name != nil && !pe.Name.Match(e.Name) {
		return false
	}
	for _, pa := range pe.Attrs {
		a, ok := e.Lookup(pa.Key)
		if !ok {
			return false
		}
		if pa.HasValue != a.HasValue {
			return false
		}
		if pa.HasValue && pa.Value != nil && !pa.Value.Match(a.Value) {
			return false
		}
	}
	return true
}

// Equal reports structural equality of the pattern elements.
func (pe *PatternElement) Equal(o *PatternElement) bool {
	if pe == nil || o == nil {
		return pe == o
	}
	if !pe.Name.Equal(o.Name) || len(pe.Attrs) != len(o.Attrs) {
		return false
	}
	for i := range pe.Attrs {
		a, b := pe.Attrs[i], o.Attrs[i]
		if a.Key != b.Key || a.HasValue != b.HasValue {
			return false
		}
		if a.HasValue && !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}

func (pe *PatternElement) appendTo(dst []byte, ops token.Operators) []byte {
	if pe.Name != nil {
		dst = pe.Name.AppendRender(dst, ops)
	}
	for _, pa := range pe.Attrs {
		dst = append(dst, AttrDelim)
		dst = token.AppendEscaped(dst, pa.Key, ops)
		if pa.HasValue {
			dst = append(dst, AttrEq)
			if pa.Value != nil {
				dst = pa.Value.AppendRender(dst, ops)
			}
		}
	}
	return dst
}

func (pe *PatternElement) String() string {
	return string(pe.appendTo(nil, MatrixPatternOps))
}
