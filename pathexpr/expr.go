// Package pathexpr compiles expressions into predicates over matrix
// path elements.
//
// An expression sees the element as `name` (string), `attrs` (map of
// valued attributes) and `flags` (bare attribute keys), plus the
// functions has(key), flag(key), attr(key) and matches(regex, s).
// matches uses regexp2 syntax, so lookarounds are available.
package pathexpr

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mpath-dev/mpath"
	"github.com/mpath-dev/mpath/debug"
)

// Expr is a compiled element predicate. It is an
// mpath.Predicate[*mpath.Element]: a false result covers rejection,
// runtime errors and non-boolean results alike.
type Expr struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Expr, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Expr{src: src, prg: prg}, nil
}

func MustCompile(src string) *Expr {
	x, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return x
}

func (x *Expr) String() string {
	return x.src
}

func (x *Expr) Match(e *mpath.Element) bool {
	if e == nil {
		return false
	}
	res, err := expr.Run(x.prg, elementEnv(e))
	if err != nil {
		if debug.Expr() {
			debug.Logf("expr %q on %v: %v\n", x.src, e, err)
		}
		return false
	}
	b, ok := res.(bool)
	if !ok {
		if debug.Expr() {
			debug.Logf("expr %q on %v: non-bool %T\n", x.src, e, res)
		}
		return false
	}
	return b
}

// MatchPath reports whether any element of p satisfies the
// expression.
func (x *Expr) MatchPath(p mpath.MatrixPath) bool {
	return p.FindIndex(x.Match) != -1
}

func elementEnv(e *mpath.Element) map[string]any {
	attrs := map[string]string{}
	flags := []string{}
	for _, a := range e.Attrs {
		if a.HasValue {
			attrs[a.Key] = a.Value
		} else {
			flags = append(flags, a.Key)
		}
	}
	return map[string]any{
		"name":  e.Name,
		"attrs": attrs,
		"flags": flags,
		"has":   e.Has,
		"flag":  e.Flag,
		"attr":  e.Get,
		"matches": func(pattern, s string) bool {
			re, err := regexp2.Compile(pattern, regexp2.None)
			if err != nil {
				return false
			}
			ok, err := re.MatchString(s)
			return err == nil && ok
		},
	}
}
