package token

// Tokenize splits text into literal runs and operator tokens. The
// escape byte of ops makes the following byte literal whatever it is;
// a trailing escape stands for itself. Adjacent literal bytes coalesce
// into a single Literal token holding the unescaped run. Tokenize is
// total: every input yields a token sequence.
func Tokenize(text string, ops Operators) []Token {
	var (
		toks  []Token
		lit   []byte
		start int
		esc   = ops.Escape()
	)
	flush := func() {
		if len(lit) == 0 {
			return
		}
		toks = append(toks, Token{
			Type: Literal,
			Text: string(lit),
			Pos:  Pos{Off: start, Src: text},
		})
		lit = lit[:0]
	}
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case esc != 0 && b == esc:
			if len(lit) == 0 {
				start = i
			}
			if i+1 < len(text) {
				lit = append(lit, text[i+1])
				i++
			} else {
				lit = append(lit, esc)
			}
		case ops.Has(b):
			flush()
			toks = append(toks, Token{
				Type: Operator,
				Text: text[i : i+1],
				Op:   b,
				Pos:  Pos{Off: i, Src: text},
			})
		default:
			if len(lit) == 0 {
				start = i
			}
			lit = append(lit, b)
		}
	}
	flush()
	return toks
}
