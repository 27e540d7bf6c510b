package main

import (
	"encoding/json"
	"fmt"

	"github.com/mpath-dev/mpath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

type parseOut struct {
	Input    string `json:"input" yaml:"input"`
	Path     string `json:"path" yaml:"path"`
	Len      int    `json:"len" yaml:"len"`
	Segments any    `json:"segments" yaml:"segments"`
}

func parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.YAML && cfg.JSON {
		return fmt.Errorf("%w: only one of -yaml, -json may be specified", cli.ErrUsage)
	}
	paths, err := pathArgs(cc, args)
	if err != nil {
		return err
	}
	c := cfg.colors(cc.Out)
	for _, in := range paths {
		out, err := parsePath(cfg, in)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		switch {
		case cfg.YAML:
			d, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
		case cfg.JSON:
			d, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cc.Out, "%s\n", d); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(cc.Out, "%s\n", colorizePath(c, out.Path, cfg.ops())); err != nil {
				return err
			}
		}
	}
	return nil
}

func parsePath(cfg *ParseConfig, in string) (*parseOut, error) {
	res := &parseOut{Input: in}
	switch cfg.flavor() {
	case matrixFlavor:
		p, err := mpath.ParseMatrix(in)
		if err != nil {
			return nil, err
		}
		res.Path, res.Len = p.String(), p.Len()
		if cfg.JSON {
			res.Segments = p.Elements()
		} else {
			res.Segments = strs(p.Elements())
		}
	case matrixPatternFlavor:
		p, err := mpath.ParseMatrixPattern(in)
		if err != nil {
			return nil, err
		}
		res.Path, res.Len, res.Segments = p.String(), p.Len(), strs(p.Elements())
	case patternFlavor:
		p := mpath.ParsePattern(in)
		res.Path, res.Len, res.Segments = p.String(), p.Len(), strs(p.Elements())
	default:
		p := mpath.Parse(in)
		res.Path, res.Len, res.Segments = p.String(), p.Len(), p.Elements()
	}
	return res, nil
}

func strs[T fmt.Stringer](elems []T) []string {
	res := make([]string, 0, len(elems))
	for _, e := range elems {
		res = append(res, e.String())
	}
	return res
}
