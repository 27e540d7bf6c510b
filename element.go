package mpath

import (
	"github.com/mpath-dev/mpath/token"
)

// Attr is one attribute of a matrix element. HasValue distinguishes a
// bare flag (`;beta`) from an empty value (`;note=`).
type Attr struct {
	Key      string
	Value    string
	HasValue bool
}

func NewAttr(key, value string) Attr {
	return Attr{Key: key, Value: value, HasValue: true}
}

func NewFlag(key string) Attr {
	return Attr{Key: key}
}

func (a Attr) String() string {
	dst := token.AppendEscaped(nil, a.Key, MatrixOps)
	if a.HasValue {
		dst = append(dst, AttrEq)
		dst = token.AppendEscaped(dst, a.Value, MatrixOps)
	}
	return string(dst)
}

// Element is one segment of a matrix path: a name with ordered
// attributes. Elements are immutable by convention: derive changed
// copies with With and WithFlag.
type Element struct {
	Name  string
	Attrs []Attr
}

// NewElement builds an element, applying the duplicate key rule: a
// repeated key replaces the value at the first key's position.
func NewElement(name string, attrs ...Attr) *Element {
	e := &Element{Name: name}
	for _, a := range attrs {
		e.setAttr(a)
	}
	return e
}

func (e *Element) setAttr(a Attr) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == a.Key {
			e.Attrs[i] = a
			return
		}
	}
	e.Attrs = append(e.Attrs, a)
}

// Lookup returns the attribute with the given key.
func (e *Element) Lookup(key string) (Attr, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attr{}, false
}

// Get returns the value of a valued attribute, or "".
func (e *Element) Get(key string) string {
	a, ok := e.Lookup(key)
	if !ok || !a.HasValue {
		return ""
	}
	return a.Value
}

// Has reports whether an attribute with the key exists, valued or
// bare.
func (e *Element) Has(key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// Flag reports whether the key is present as a bare flag.
func (e *Element) Flag(key string) bool {
	a, ok := e.Lookup(key)
	return ok && !a.HasValue
}

// With returns a copy of e with key set to value.
func (e *Element) With(key, value string) *Element {
	ne := e.Clone()
	ne.setAttr(NewAttr(key, value))
	return ne
}

// WithFlag returns a copy of e with key present as a bare flag.
func (e *Element) WithFlag(key string) *Element {
	ne := e.Clone()
	ne.setAttr(NewFlag(key))
	return ne
}

func (e *Element) Clone() *Element {
	ne := &Element{Name: e.Name}
	if len(e.Attrs) > 0 {
		ne.Attrs = make([]Attr, len(e.Attrs))
		copy(ne.Attrs, e.Attrs)
	}
	return ne
}

// Equal reports structural equality. Attribute order matters: it is
// part of the element's string form.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Name != o.Name || len(e.Attrs) != len(o.Attrs) {
		return false
	}
	for i := range e.Attrs {
		if e.Attrs[i] != o.Attrs[i] {
			return false
		}
	}
	return true
}

func (e *Element) appendTo(dst []byte, ops token.Operators) []byte {
	dst = token.AppendEscaped(dst, e.Name, ops)
	for _, a := range e.Attrs {
		dst = append(dst, AttrDelim)
		dst = token.AppendEscaped(dst, a.Key, ops)
		if a.HasValue {
			dst = append(dst, AttrEq)
			dst = token.AppendEscaped(dst, a.Value, ops)
		}
	}
	return dst
}

func (e *Element) String() string {
	return string(e.appendTo(nil, MatrixOps))
}
