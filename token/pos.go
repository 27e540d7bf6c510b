package token

import (
	"fmt"
	"strconv"
)

// Pos is a byte offset into the path string it was tokenized from.
type Pos struct {
	Off int
	Src string
}

func (p Pos) String() string {
	sample := p.Src[max(0, p.Off-5):min(p.Off+5, len(p.Src))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.Off)
}
