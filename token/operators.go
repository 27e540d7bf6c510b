package token

import "fmt"

// Operators is a set of single byte operators together with an escape
// byte. A zero escape byte disables escaping. Operator bytes must be
// ASCII so byte-wise scans never split a UTF-8 rune.
type Operators struct {
	esc byte
	set [128]bool
}

func NewOperators(esc byte, ops ...byte) Operators {
	var o Operators
	o.esc = esc
	for _, b := range ops {
		if b >= 128 {
			panic(fmt.Sprintf("token: non-ascii operator %q", b))
		}
		o.set[b] = true
	}
	return o
}

func (o Operators) Has(b byte) bool {
	return b < 128 && o.set[b]
}

func (o Operators) Escape() byte {
	return o.esc
}

// Bytes returns the operator bytes in ascending order.
func (o Operators) Bytes() []byte {
	var res []byte
	for b := 0; b < 128; b++ {
		if o.set[b] {
			res = append(res, byte(b))
		}
	}
	return res
}

// With returns a copy of o with the given operators added.
func (o Operators) With(ops ...byte) Operators {
	for _, b := range ops {
		if b >= 128 {
			panic(fmt.Sprintf("token: non-ascii operator %q", b))
		}
		o.set[b] = true
	}
	return o
}

// Fold returns o with escaping disabled and the escape byte folded into
// the operator set. Tokenizing an escaped value with the folded set
// surfaces each escape as an operator token, which is how [Unescape]
// recovers the original text.
func (o Operators) Fold() Operators {
	if o.esc != 0 && o.esc < 128 {
		o.set[o.esc] = true
		o.esc = 0
	}
	return o
}
