package pathexpr

import (
	"testing"

	"github.com/mpath-dev/mpath"
)

type exprTest struct {
	src  string
	elem string
	res  bool
}

var exprTests = []exprTest{
	{src: `name == "svc"`, elem: "svc;version=2", res: true},
	{src: `name == "svc"`, elem: "other;version=2", res: false},
	{src: `attr("version") == "2"`, elem: "svc;version=2", res: true},
	{src: `attrs["version"] == "2"`, elem: "svc;version=2", res: true},
	{src: `attr("version") == "2"`, elem: "svc;version=3", res: false},
	{src: `has("beta")`, elem: "svc;beta", res: true},
	{src: `has("beta")`, elem: "svc", res: false},
	{src: `flag("beta")`, elem: "svc;beta", res: true},
	{src: `flag("beta")`, elem: "svc;beta=1", res: false},
	{src: `"beta" in flags`, elem: "svc;beta;x=1", res: true},
	{src: `len(flags) == 0`, elem: "svc;x=1", res: true},
	{src: `matches("^v[0-9]+$", attr("release"))`, elem: "svc;release=v12", res: true},
	{src: `matches("^v[0-9]+$", attr("release"))`, elem: "svc;release=12", res: false},
	{src: `matches("(?!bad)good", name)`, elem: "good", res: true},
	{src: `matches("[invalid", name)`, elem: "good", res: false},
	{src: `name startsWith "s" && attr("version") != ""`, elem: "svc;version=2", res: true},
	// non-boolean and failing expressions reject
	{src: `name`, elem: "svc", res: false},
	{src: `len(name) / (len(name) - len(name)) == 1`, elem: "svc", res: false},
}

func TestExprMatch(t *testing.T) {
	for _, et := range exprTests {
		x, err := Compile(et.src)
		if err != nil {
			t.Errorf("Compile(%q): %v", et.src, err)
			continue
		}
		p, err := mpath.ParseMatrix(et.elem)
		if err != nil {
			t.Fatalf("ParseMatrix(%q): %v", et.elem, err)
		}
		if got := x.Match(p.Head()); got != et.res {
			t.Errorf("%q on %q = %v want %v", et.src, et.elem, got, et.res)
		}
	}
}

func TestCompileErr(t *testing.T) {
	if _, err := Compile("name =="); err == nil {
		t.Errorf("bad expression compiled")
	}
}

func TestMatchPath(t *testing.T) {
	p, err := mpath.ParseMatrix("a;x=1/b;beta/c")
	if err != nil {
		t.Fatal(err)
	}
	if !MustCompile(`flag("beta")`).MatchPath(p) {
		t.Errorf("beta not found in path")
	}
	if MustCompile(`name == "zz"`).MatchPath(p) {
		t.Errorf("zz found in path")
	}
}

func TestExprAsPredicate(t *testing.T) {
	p, err := mpath.ParseMatrix("svc;version=2/ep;beta")
	if err != nil {
		t.Fatal(err)
	}
	ok := mpath.MatchesFunc(p,
		MustCompile(`attr("version") == "2"`),
		MustCompile(`flag("beta")`),
	)
	if !ok {
		t.Errorf("expression predicates rejected path")
	}
}
