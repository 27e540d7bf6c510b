// Package pathdiff computes segment-level diffs between string paths.
package pathdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mpath-dev/mpath"
	"github.com/mpath-dev/mpath/debug"
	"github.com/mpath-dev/mpath/token"
)

type EditOp int

const (
	Keep EditOp = iota
	Del
	Ins
)

func (op EditOp) String() string {
	return map[EditOp]string{
		Keep: "keep",
		Del:  "del",
		Ins:  "ins",
	}[op]
}

// Edit is one segment of the edit script. Seg is the raw, unescaped
// segment text.
type Edit struct {
	Op  EditOp
	Seg string
}

type Edits []Edit

// Changed reports whether the script contains any Del or Ins.
func (es Edits) Changed() bool {
	for i := range es {
		if es[i].Op != Keep {
			return true
		}
	}
	return false
}

// Reverse returns the script turning b back into a, given the script
// turning a into b. Deletions and insertions swap roles; within a
// changed run deletions come first.
func (es Edits) Reverse() Edits {
	var (
		res Edits
		ins Edits
	)
	flush := func() {
		res = append(res, ins...)
		ins = ins[:0]
	}
	for i := range es {
		switch es[i].Op {
		case Del:
			ins = append(ins, Edit{Op: Ins, Seg: es[i].Seg})
		case Ins:
			res = append(res, Edit{Op: Del, Seg: es[i].Seg})
		default:
			flush()
			res = append(res, es[i])
		}
	}
	flush()
	return res
}

// String renders the script with one segment per line, prefixed
// `-`, `+` or space. Segments render escaped.
func (es Edits) String() string {
	var sb strings.Builder
	for i := range es {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch es[i].Op {
		case Del:
			sb.WriteByte('-')
		case Ins:
			sb.WriteByte('+')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		sb.Write(token.AppendEscaped(nil, es[i].Seg, mpath.StringOps))
	}
	return sb.String()
}

// Diff aligns the segments of a and b and returns the edit script
// turning a into b. Deletions precede insertions at a replacement.
func Diff(a, b mpath.StringPath) Edits {
	dmp := diffpatch.New()
	ca, cb, arr := dmp.DiffLinesToChars(segLines(a), segLines(b))
	ds := dmp.DiffMain(ca, cb, false)
	ds = dmp.DiffCharsToLines(ds, arr)
	if debug.Diff() {
		debug.Logf("pathdiff: %d raw diffs for %s -> %s\n", len(ds), a.String(), b.String())
	}
	var res Edits
	for i := range ds {
		d := &ds[i]
		var op EditOp
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Ins
		case diffpatch.DiffDelete:
			op = Del
		case diffpatch.DiffEqual:
			op = Keep
		}
		for _, line := range strings.Split(d.Text, "\n") {
			if line == "" {
				continue
			}
			res = append(res, Edit{Op: op, Seg: token.Unescape(line, mpath.StringOps)})
		}
	}
	return res
}

// DiffStrings parses then diffs.
func DiffStrings(a, b string) Edits {
	return Diff(mpath.Parse(a), mpath.Parse(b))
}

// Intra character-diffs two segments for fine-grained rendering.
func Intra(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	return dmp.DiffMain(a, b, false)
}

// segLines renders each segment escaped on its own line, so the
// line-oriented diff machinery aligns whole segments.
func segLines(p mpath.StringPath) string {
	var sb strings.Builder
	for _, seg := range p.Elements() {
		sb.Write(token.AppendEscaped(nil, seg, mpath.StringOps))
		sb.WriteByte('\n')
	}
	return sb.String()
}
