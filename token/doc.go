// Package token provides tokenization support for path strings.
//
// [Tokenize] splits a path string into literal runs and single byte
// operator tokens with respect to an [Operators] set, honoring its
// escape byte.
//
// [Escaped] and [Unescape] form the value codec. Unescape is defined by
// re-tokenizing with [Operators.Fold], which guarantees the round trip
// for every input.
package token
