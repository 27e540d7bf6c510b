package main

import (
	"fmt"
	"strings"

	"github.com/mpath-dev/mpath"
	"github.com/mpath-dev/mpath/pathdiff"
	"github.com/mpath-dev/mpath/token"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var (
		edits = pathdiff.DiffStrings(args[0], args[1])
		c     = cfg.colors(cc.Out)
	)
	if cfg.Reverse {
		edits = edits.Reverse()
	}
	for i := 0; i < len(edits); i++ {
		e := edits[i]
		seg := token.Escaped(e.Seg, mpath.StringOps)
		switch e.Op {
		case pathdiff.Del:
			if cfg.W && i+1 < len(edits) && edits[i+1].Op == pathdiff.Ins {
				if err := intraLine(cc, c, e.Seg, edits[i+1].Seg); err != nil {
					return err
				}
				i++
				continue
			}
			if _, err := fmt.Fprintf(cc.Out, "%s\n", c.Color(DelColor, "- "+seg)); err != nil {
				return err
			}
		case pathdiff.Ins:
			if _, err := fmt.Fprintf(cc.Out, "%s\n", c.Color(InsColor, "+ "+seg)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(cc.Out, "  %s\n", seg); err != nil {
				return err
			}
		}
	}
	if edits.Changed() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func intraLine(cc *cli.Context, c *Colors, del, ins string) error {
	var b strings.Builder
	for _, d := range pathdiff.Intra(del, ins) {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString(c.Color(DelColor, d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(c.Color(InsColor, d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	_, err := fmt.Fprintf(cc.Out, "~ %s\n", b.String())
	return err
}
