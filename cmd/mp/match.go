package main

import (
	"fmt"

	"github.com/mpath-dev/mpath"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern path", cli.ErrUsage)
	}
	paths, err := pathArgs(cc, args[1:])
	if err != nil {
		return err
	}
	var (
		c       = cfg.colors(cc.Out)
		matched int
	)
	switch cfg.flavor() {
	case matrixFlavor, matrixPatternFlavor:
		pat, err := mpath.ParseMatrixPattern(args[0])
		if err != nil {
			return fmt.Errorf("error parsing pattern %q: %w", args[0], err)
		}
		matched, err = matchPaths(cfg, cc, c, pat, parseMatrix, paths)
		if err != nil {
			return err
		}
	default:
		pat := mpath.ParsePattern(args[0])
		matched, err = matchPaths(cfg, cc, c, pat, parseString, paths)
		if err != nil {
			return err
		}
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func parseMatrix(s string) (mpath.MatrixPath, error) {
	return mpath.ParseMatrix(s)
}

func parseString(s string) (mpath.StringPath, error) {
	return mpath.Parse(s), nil
}

func matchPaths[T any, P mpath.Predicate[T]](
	cfg *MatchConfig,
	cc *cli.Context,
	c *Colors,
	pat mpath.Path[P],
	parse func(string) (mpath.Path[T], error),
	paths []string,
) (int, error) {
	matched := 0
	for _, in := range paths {
		p, err := parse(in)
		if err != nil {
			return 0, fmt.Errorf("error parsing %q: %w", in, err)
		}
		ok := mpath.Matches(p, pat)
		if ok {
			matched++
		}
		if cfg.Q {
			continue
		}
		if cfg.V {
			mark := c.Color(MissColor, "miss ")
			if ok {
				mark = c.Color(MatchColor, "match")
			}
			if _, err := fmt.Fprintf(cc.Out, "%s %s\n", mark, in); err != nil {
				return 0, err
			}
			if err := explain(cc, c, p, pat); err != nil {
				return 0, err
			}
			continue
		}
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", in); err != nil {
			return 0, err
		}
	}
	return matched, nil
}

func explain[T any, P mpath.Predicate[T]](cc *cli.Context, c *Colors, p mpath.Path[T], pat mpath.Path[P]) error {
	n := max(p.Len(), pat.Len())
	for i := 0; i < n; i++ {
		var (
			pe, okP = pat.At(i)
			e, okE  = p.At(i)
			want    any = "-"
			got     any = "-"
			hit     bool
		)
		if okP {
			want = pe
		}
		if okE {
			got = e
		}
		if okP && okE {
			hit = pe.Match(e)
		}
		mark := c.Color(MissColor, "!=")
		if hit {
			mark = c.Color(MatchColor, "==")
		}
		if _, err := fmt.Fprintf(cc.Out, "  [%d] %v %s %v\n", i, want, mark, got); err != nil {
			return err
		}
	}
	return nil
}
