package mpath

import (
	"github.com/mpath-dev/mpath/debug"
)

// Predicate tests one path element. *glob.Pattern is a
// Predicate[string], *PatternElement is a Predicate[*Element], and
// [And], [Or], [Not] build composites.
type Predicate[T any] interface {
	Match(T) bool
}

// Matches reports whether pat accepts p: the lengths must be equal
// and every predicate must match the element at its position. The
// empty pattern matches exactly the empty path.
func Matches[T any, P Predicate[T]](p Path[T], pat Path[P]) bool {
	if debug.Match() {
		debug.Logf("match: %d elements against %d predicates\n", len(p.elems), len(pat.elems))
	}
	if len(p.elems) != len(pat.elems) {
		return false
	}
	for i := range p.elems {
		if !pat.elems[i].Match(p.elems[i]) {
			if debug.Match() {
				debug.Logf("match: predicate %d rejected %v\n", i, p.elems[i])
			}
			return false
		}
	}
	return true
}

// MatchesPrefix reports whether pat accepts a prefix of p: pat may be
// shorter than p, and every predicate must match at its position.
func MatchesPrefix[T any, P Predicate[T]](p Path[T], pat Path[P]) bool {
	if len(pat.elems) > len(p.elems) {
		return false
	}
	for i := range pat.elems {
		if !pat.elems[i].Match(p.elems[i]) {
			return false
		}
	}
	return true
}

// MatchesFunc reports whether p's elements satisfy preds positionally
// under the equal length rule. It admits predicates with no string
// form, such as combinators over mixed predicate types.
func MatchesFunc[T any](p Path[T], preds ...Predicate[T]) bool {
	if len(p.elems) != len(preds) {
		return false
	}
	for i := range preds {
		if !preds[i].Match(p.elems[i]) {
			return false
		}
	}
	return true
}
