// Package mpath implements typed, matchable paths: ordered, immutable
// element sequences with a delimited, escapable string form.
//
// Four flavors share one generic container:
//
//   - [StringPath]: plain string segments, `a/b/c`
//   - [PatternPath]: wildcard segments, `a*/b?c`
//   - [MatrixPath]: named segments with ordered attributes,
//     `svc;version=2;beta/ep`
//   - [MatrixPatternPath]: wildcard names and attribute values,
//     `svc*;version=?/ep`
//
// Every flavor satisfies parse(serialize(p)) == p. Serialization is
// canonical: parsing absorbs empty segments, so serialize(parse(s))
// may differ from s while denoting the same path.
//
// Paths and elements are immutable after construction and safe for
// unsynchronized concurrent use.
package mpath

import (
	"github.com/mpath-dev/mpath/token"
)

// Path syntax bytes. All operators are ASCII.
const (
	Delim     byte = '/'
	Esc       byte = '\\'
	AttrDelim byte = ';'
	AttrEq    byte = '='
	Star      byte = '*'
	AnyChar   byte = '?'
)

// Operator sets per flavor.
var (
	StringOps        = token.NewOperators(Esc, Delim)
	PatternOps       = token.NewOperators(Esc, Delim, Star, AnyChar)
	MatrixOps        = token.NewOperators(Esc, Delim, AttrDelim, AttrEq)
	MatrixPatternOps = token.NewOperators(Esc, Delim, AttrDelim, AttrEq, Star, AnyChar)
)
