package mpath

import (
	"github.com/mpath-dev/mpath/glob"
	"github.com/mpath-dev/mpath/token"
)

// Kind bundles the capabilities of one path flavor: the operator set
// of its string form, element equality, element rendering, flavor
// parsing, and the rule for elements with no string form. A Kind is
// bound to a Path at construction and flows through every derivation,
// so a derived path is always the flavor of its source.
type Kind[T any] struct {
	Ops    token.Operators
	Equal  func(a, b T) bool
	Append func(dst []byte, v T, ops token.Operators) []byte
	Parse  func(s string) ([]T, error)
	Skip   func(v T) bool
}

// Path is an ordered, immutable sequence of elements of one flavor.
// The zero value of a flavor alias is its empty path. Derivations
// share the backing array, which is safe because no operation writes
// elements in place.
type Path[T any] struct {
	elems []T
	kind  *Kind[T]
}

// Make builds a path over k from elems, skipping elements k cannot
// serialize and copying the rest.
func Make[T any](k *Kind[T], elems ...T) Path[T] {
	es := make([]T, 0, len(elems))
	for _, e := range elems {
		if k.Skip != nil && k.Skip(e) {
			continue
		}
		es = append(es, e)
	}
	return Path[T]{elems: es, kind: k}
}

// ParseKind parses s as a path over k.
func ParseKind[T any](k *Kind[T], s string) (Path[T], error) {
	elems, err := k.Parse(s)
	if err != nil {
		return Path[T]{kind: k}, err
	}
	return Path[T]{elems: elems, kind: k}, nil
}

func defaultKind[T any]() *Kind[T] {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(StringKind).(*Kind[T])
	case *glob.Pattern:
		return any(PatternKind).(*Kind[T])
	case *Element:
		return any(MatrixKind).(*Kind[T])
	case *PatternElement:
		return any(MatrixPatternKind).(*Kind[T])
	}
	return nil
}

func (p Path[T]) k() *Kind[T] {
	if p.kind != nil {
		return p.kind
	}
	if k := defaultKind[T](); k != nil {
		return k
	}
	panic(ErrNoKind)
}

func (p Path[T]) skip(v T) bool {
	k := p.kind
	if k == nil {
		k = defaultKind[T]()
	}
	if k == nil || k.Skip == nil {
		return false
	}
	return k.Skip(v)
}

// Kind returns the path's kind. For the zero value of a standard
// flavor it resolves the flavor's default kind; for other types it
// panics with ErrNoKind.
func (p Path[T]) Kind() *Kind[T] {
	return p.k()
}

func (p Path[T]) Len() int {
	return len(p.elems)
}

func (p Path[T]) IsEmpty() bool {
	return len(p.elems) == 0
}

// Head returns the first element. It panics with ErrEmptyPath on an
// empty path; At is the checked lookup.
func (p Path[T]) Head() T {
	if len(p.elems) == 0 {
		panic(ErrEmptyPath)
	}
	return p.elems[0]
}

// Last returns the final element. It panics with ErrEmptyPath on an
// empty path.
func (p Path[T]) Last() T {
	if len(p.elems) == 0 {
		panic(ErrEmptyPath)
	}
	return p.elems[len(p.elems)-1]
}

// At returns the i'th element, reporting whether i is in range.
func (p Path[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(p.elems) {
		var zero T
		return zero, false
	}
	return p.elems[i], true
}

// Tail returns the path without its first element. The empty path is
// its own tail.
func (p Path[T]) Tail() Path[T] {
	if len(p.elems) == 0 {
		return p
	}
	return Path[T]{elems: p.elems[1:], kind: p.kind}
}

// Parent returns the path without its last element. The empty path is
// its own parent.
func (p Path[T]) Parent() Path[T] {
	if len(p.elems) == 0 {
		return p
	}
	return Path[T]{elems: p.elems[:len(p.elems)-1], kind: p.kind}
}

// Consume returns the path without its first n elements. n clamps to
// [0, Len].
func (p Path[T]) Consume(n int) Path[T] {
	n = clamp(n, 0, len(p.elems))
	return Path[T]{elems: p.elems[n:], kind: p.kind}
}

// Slice returns the sub-path [i, j). Both bounds clamp to [0, Len];
// j < i yields the empty path.
func (p Path[T]) Slice(i, j int) Path[T] {
	i = clamp(i, 0, len(p.elems))
	j = clamp(j, i, len(p.elems))
	return Path[T]{elems: p.elems[i:j], kind: p.kind}
}

// Add returns a new path with v appended.
func (p Path[T]) Add(v T) Path[T] {
	if p.skip(v) {
		return p
	}
	es := make([]T, len(p.elems)+1)
	copy(es, p.elems)
	es[len(p.elems)] = v
	return Path[T]{elems: es, kind: p.kind}
}

// AddAll returns a new path with o's elements appended.
func (p Path[T]) AddAll(o Path[T]) Path[T] {
	if len(o.elems) == 0 {
		return p
	}
	es := make([]T, 0, len(p.elems)+len(o.elems))
	es = append(es, p.elems...)
	es = append(es, o.elems...)
	return Path[T]{elems: es, kind: p.kind}
}

// Prepend returns a new path with v first.
func (p Path[T]) Prepend(v T) Path[T] {
	if p.skip(v) {
		return p
	}
	es := make([]T, len(p.elems)+1)
	es[0] = v
	copy(es[1:], p.elems)
	return Path[T]{elems: es, kind: p.kind}
}

// Equal reports element-wise equality under the receiver's kind.
func (p Path[T]) Equal(o Path[T]) bool {
	if len(p.elems) != len(o.elems) {
		return false
	}
	if len(p.elems) == 0 {
		return true
	}
	eq := p.k().Equal
	for i := range p.elems {
		if !eq(p.elems[i], o.elems[i]) {
			return false
		}
	}
	return true
}

// StartsWith reports whether o is a prefix of p. The empty path is a
// prefix of every path.
func (p Path[T]) StartsWith(o Path[T]) bool {
	if len(o.elems) > len(p.elems) {
		return false
	}
	if len(o.elems) == 0 {
		return true
	}
	eq := p.k().Equal
	for i := range o.elems {
		if !eq(p.elems[i], o.elems[i]) {
			return false
		}
	}
	return true
}

// EndsWith reports whether o is a suffix of p.
func (p Path[T]) EndsWith(o Path[T]) bool {
	d := len(p.elems) - len(o.elems)
	if d < 0 {
		return false
	}
	if len(o.elems) == 0 {
		return true
	}
	eq := p.k().Equal
	for i := range o.elems {
		if !eq(p.elems[d+i], o.elems[i]) {
			return false
		}
	}
	return true
}

// Find returns the first element satisfying pred.
func (p Path[T]) Find(pred func(T) bool) (T, bool) {
	for _, v := range p.elems {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying pred,
// or -1.
func (p Path[T]) FindIndex(pred func(T) bool) int {
	for i, v := range p.elems {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Elements returns a copy of the element slice.
func (p Path[T]) Elements() []T {
	if len(p.elems) == 0 {
		return nil
	}
	es := make([]T, len(p.elems))
	copy(es, p.elems)
	return es
}

// AppendString appends the path's string form to dst.
func (p Path[T]) AppendString(dst []byte) []byte {
	if len(p.elems) == 0 {
		return dst
	}
	k := p.k()
	for i, v := range p.elems {
		if i > 0 {
			dst = append(dst, Delim)
		}
		dst = k.Append(dst, v, k.Ops)
	}
	return dst
}

func (p Path[T]) String() string {
	return string(p.AppendString(nil))
}

func (p Path[T]) MarshalText() ([]byte, error) {
	return p.AppendString(nil), nil
}

func (p *Path[T]) UnmarshalText(text []byte) error {
	k := p.kind
	if k == nil {
		k = defaultKind[T]()
	}
	if k == nil {
		return ErrNoKind
	}
	elems, err := k.Parse(string(text))
	if err != nil {
		return err
	}
	p.elems, p.kind = elems, k
	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
