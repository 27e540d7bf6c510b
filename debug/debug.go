package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Match bool
	Expr  bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("MPATH_DEBUG_PARSE")
	d.Match = boolEnv("MPATH_DEBUG_MATCH")
	d.Expr = boolEnv("MPATH_DEBUG_EXPR")
	d.Diff = boolEnv("MPATH_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Match() bool {
	return d.Match
}
func Expr() bool {
	return d.Expr
}
func Diff() bool {
	return d.Diff
}
