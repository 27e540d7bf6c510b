package main

import (
	"io"
	"os"

	"github.com/mpath-dev/mpath"
	"github.com/mpath-dev/mpath/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	P  bool `cli:"name=p aliases=pattern desc='paths are wildcard patterns'"`
	M  bool `cli:"name=m aliases=matrix desc='paths are matrix paths'"`
	MP bool `cli:"name=mp desc='paths are matrix patterns'"`

	Color bool `cli:"name=color desc='print paths in color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type flavor int

const (
	stringFlavor flavor = iota
	patternFlavor
	matrixFlavor
	matrixPatternFlavor
)

var flavorStrings = map[flavor]string{
	stringFlavor:        "string",
	patternFlavor:       "pattern",
	matrixFlavor:        "matrix",
	matrixPatternFlavor: "matrix-pattern",
}

func (f flavor) String() string {
	return flavorStrings[f]
}

func (cfg *MainConfig) flavor() flavor {
	switch {
	case cfg.MP:
		return matrixPatternFlavor
	case cfg.M:
		return matrixFlavor
	case cfg.P:
		return patternFlavor
	}
	return stringFlavor
}

func (cfg *MainConfig) ops() token.Operators {
	switch cfg.flavor() {
	case patternFlavor:
		return mpath.PatternOps
	case matrixFlavor:
		return mpath.MatrixOps
	case matrixPatternFlavor:
		return mpath.MatrixPatternOps
	}
	return mpath.StringOps
}

func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

type ParseConfig struct {
	*MainConfig

	YAML bool `cli:"name=yaml desc='print path structure as yaml'"`
	JSON bool `cli:"name=json desc='print path structure as json'"`

	Parse *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Q bool `cli:"name=q desc='no output, exit status only'"`
	V bool `cli:"name=v desc='explain the match element by element'"`
}

type FindConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='select paths with an element expression'"`
	V    bool   `cli:"name=v desc='select paths that do not match'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	W       bool `cli:"name=w desc='show intra-segment diffs for changed segments'"`

	Diff *cli.Command
}

type EditConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg as file'"`

	Edit *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
