package token

// AppendEscaped appends s to dst with every operator byte and every
// occurrence of the escape byte prefixed by the escape byte.
func AppendEscaped(dst []byte, s string, ops Operators) []byte {
	esc := ops.Escape()
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (esc != 0 && b == esc) || ops.Has(b) {
			dst = append(dst, esc)
		}
		dst = append(dst, b)
	}
	return dst
}

func Escaped(s string, ops Operators) string {
	return string(AppendEscaped(nil, s, ops))
}

// Unescape inverts Escaped. It re-tokenizes s with the folded operator
// set, so each escape byte surfaces as an operator token: an escape
// followed by an operator token contributes that operator's byte, an
// escape followed by a literal contributes nothing (the literal already
// carries the byte it escaped), and a trailing escape stands for
// itself. Unescape(Escaped(s, ops), ops) == s for every s.
func Unescape(s string, ops Operators) string {
	esc := ops.Escape()
	if esc == 0 {
		return s
	}
	toks := Tokenize(s, ops.Fold())
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(toks); i++ {
		t := &toks[i]
		if t.Type == Literal {
			buf = append(buf, t.Text...)
			continue
		}
		if t.Op != esc {
			buf = append(buf, t.Op)
			continue
		}
		if i+1 == len(toks) {
			buf = append(buf, esc)
			break
		}
		if next := &toks[i+1]; next.Type == Operator {
			buf = append(buf, next.Op)
			i++
		}
	}
	return string(buf)
}
