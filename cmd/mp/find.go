package main

import (
	"fmt"

	"github.com/mpath-dev/mpath"
	"github.com/mpath-dev/mpath/pathexpr"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	var x *pathexpr.Expr
	if cfg.Expr != "" {
		x, err = pathexpr.Compile(cfg.Expr)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	pat := ""
	if x == nil {
		if len(args) == 0 {
			return fmt.Errorf("%w: find requires a pattern path or -e expression", cli.ErrUsage)
		}
		pat = args[0]
		args = args[1:]
	}
	filter, err := findFilter(cfg, x, pat)
	if err != nil {
		return fmt.Errorf("error parsing pattern %q: %w", pat, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	found := 0
	for _, arg := range args {
		lines, err := loadPaths(cc, arg)
		if err != nil {
			return err
		}
		for _, in := range lines {
			ok, err := filter(in)
			if err != nil {
				return fmt.Errorf("error parsing %q: %w", in, err)
			}
			if ok == cfg.V {
				continue
			}
			found++
			if _, err := fmt.Fprintf(cc.Out, "%s\n", in); err != nil {
				return err
			}
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// findFilter builds the per-path selection function.  An expression
// forces matrix parsing; otherwise the flavor flags decide between
// plain and matrix patterns.
func findFilter(cfg *FindConfig, x *pathexpr.Expr, pat string) (func(string) (bool, error), error) {
	matrix := x != nil || cfg.flavor() == matrixFlavor || cfg.flavor() == matrixPatternFlavor
	if !matrix {
		pp := mpath.ParsePattern(pat)
		return func(in string) (bool, error) {
			return mpath.Matches(mpath.Parse(in), pp), nil
		}, nil
	}
	var (
		mpat   mpath.MatrixPatternPath
		hasPat = x == nil
	)
	if hasPat {
		var err error
		mpat, err = mpath.ParseMatrixPattern(pat)
		if err != nil {
			return nil, err
		}
	}
	return func(in string) (bool, error) {
		p, err := mpath.ParseMatrix(in)
		if err != nil {
			return false, err
		}
		if hasPat && !mpath.Matches(p, mpat) {
			return false, nil
		}
		if x != nil && !x.MatchPath(p) {
			return false, nil
		}
		return true, nil
	}, nil
}
