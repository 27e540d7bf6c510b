package main

import (
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
)

func TestFlavorSelection(t *testing.T) {
	var fts = []struct {
		cfg  MainConfig
		want flavor
	}{
		{cfg: MainConfig{}, want: stringFlavor},
		{cfg: MainConfig{P: true}, want: patternFlavor},
		{cfg: MainConfig{M: true}, want: matrixFlavor},
		{cfg: MainConfig{MP: true}, want: matrixPatternFlavor},
	}
	for _, ft := range fts {
		if got := ft.cfg.flavor(); got != ft.want {
			t.Errorf("flavor() = %s want %s", got, ft.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	var pts = []struct {
		cfg  MainConfig
		in   string
		path string
		n    int
	}{
		{cfg: MainConfig{}, in: "a//b", path: "a/b", n: 2},
		{cfg: MainConfig{P: true}, in: "a*/b?c", path: "a*/b?c", n: 2},
		{cfg: MainConfig{M: true}, in: "svc;version=2/ep", path: "svc;version=2/ep", n: 2},
		{cfg: MainConfig{MP: true}, in: "svc*;beta/ep", path: "svc*;beta/ep", n: 2},
	}
	for _, pt := range pts {
		cfg := &ParseConfig{MainConfig: &pt.cfg}
		out, err := parsePath(cfg, pt.in)
		if err != nil {
			t.Errorf("parsePath(%q): %v", pt.in, err)
			continue
		}
		if out.Path != pt.path || out.Len != pt.n {
			t.Errorf("parsePath(%q) = %q len %d, want %q len %d",
				pt.in, out.Path, out.Len, pt.path, pt.n)
		}
	}
	cfg := &ParseConfig{MainConfig: &MainConfig{M: true}}
	if _, err := parsePath(cfg, "=x"); err == nil {
		t.Errorf("parsePath accepted bad matrix path")
	}
}

func TestEditPath(t *testing.T) {
	patch, err := jsonpatch.DecodePatch(
		[]byte(`[{"op": "replace", "path": "/0/attrs/0/value", "value": "3"}]`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := editPath(patch, "svc;version=2/ep")
	if err != nil {
		t.Fatal(err)
	}
	if out != "svc;version=3/ep" {
		t.Errorf("editPath = %q", out)
	}
}

func TestFindFilter(t *testing.T) {
	cfg := &FindConfig{MainConfig: &MainConfig{}}
	filter, err := findFilter(cfg, nil, "svc*/ep")
	if err != nil {
		t.Fatal(err)
	}
	var fts = []struct {
		in   string
		want bool
	}{
		{in: "svc-1/ep", want: true},
		{in: "other/ep", want: false},
		{in: "svc-1/ep/extra", want: false},
	}
	for _, ft := range fts {
		ok, err := filter(ft.in)
		if err != nil {
			t.Errorf("filter(%q): %v", ft.in, err)
			continue
		}
		if ok != ft.want {
			t.Errorf("filter(%q) = %v want %v", ft.in, ok, ft.want)
		}
	}
}

func TestReadPaths(t *testing.T) {
	in := "a/b\n\n  svc;x=1/ep  \nc\n"
	got, err := readPaths(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a/b", "svc;x=1/ep", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d = %q want %q", i, got[i], want[i])
		}
	}
}
