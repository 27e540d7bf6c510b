package token

type Type int

const (
	Literal Type = iota
	Operator
)

func (t Type) String() string {
	return map[Type]string{
		Literal:  "Literal",
		Operator: "Operator",
	}[t]
}

// Token is one lexical unit of a path string. Literal tokens carry the
// unescaped run in Text. Operator tokens carry the operator byte in Op
// and its one byte string in Text.
type Token struct {
	Type Type
	Text string
	Op   byte
	Pos  Pos
}

func (t *Token) String() string {
	if t.Type == Operator {
		return string(t.Op)
	}
	return t.Text
}
