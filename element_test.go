package mpath

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElementAccessors(t *testing.T) {
	e := NewElement("svc", NewAttr("version", "2"), NewFlag("beta"), NewAttr("note", ""))
	if e.Get("version") != "2" {
		t.Errorf("Get(version) = %q", e.Get("version"))
	}
	if !e.Has("beta") || !e.Flag("beta") {
		t.Errorf("beta flag not seen")
	}
	if e.Flag("version") {
		t.Errorf("valued attribute reported as flag")
	}
	if e.Get("note") != "" || !e.Has("note") || e.Flag("note") {
		t.Errorf("empty value confused with flag")
	}
	if e.Get("beta") != "" {
		t.Errorf("Get on flag = %q", e.Get("beta"))
	}
	if e.Has("missing") {
		t.Errorf("missing key reported present")
	}
	a, ok := e.Lookup("version")
	if !ok || a != NewAttr("version", "2") {
		t.Errorf("Lookup = %+v, %v", a, ok)
	}
}

func TestElementWith(t *testing.T) {
	e := NewElement("svc", NewAttr("version", "1"))
	e2 := e.With("version", "2").With("region", "us").WithFlag("beta")
	if e.Get("version") != "1" || len(e.Attrs) != 1 {
		t.Errorf("With mutated receiver: %s", e)
	}
	if got := e2.String(); got != "svc;version=2;region=us;beta" {
		t.Errorf("derived element = %q", got)
	}
}

func TestElementEqual(t *testing.T) {
	a := NewElement("svc", NewAttr("version", "2"), NewFlag("beta"))
	b := NewElement("svc", NewAttr("version", "2"), NewFlag("beta"))
	c := NewElement("svc", NewFlag("beta"), NewAttr("version", "2"))
	if !a.Equal(b) {
		t.Errorf("identical elements not Equal")
	}
	if a.Equal(c) {
		t.Errorf("attribute order ignored by Equal")
	}
	if a.Equal(NewElement("svc", NewAttr("version", "2"), NewAttr("beta", ""))) {
		t.Errorf("flag equals empty value")
	}
	var nilE *Element
	if a.Equal(nilE) || !nilE.Equal(nil) {
		t.Errorf("nil comparison misbehaves")
	}
}

func TestElementString(t *testing.T) {
	e := NewElement("a;b", NewAttr("k=1", "v/2"), NewFlag("f"))
	want := `a\;b;k\=1=v\/2;f`
	if got := e.String(); got != want {
		t.Errorf("String() = %q want %q", got, want)
	}
	p, err := ParseMatrix(e.String())
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(p.Head()) {
		t.Errorf("element round trip failed: %q", e)
	}
}

func TestElementJSON(t *testing.T) {
	e := NewElement("svc", NewAttr("version", "2"), NewFlag("beta"), NewAttr("note", ""))
	d, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"svc","attrs":[{"key":"version","value":"2"},{"key":"beta"},{"key":"note","value":""}]}`
	if string(d) != want {
		t.Errorf("json = %s want %s", d, want)
	}
	var back Element
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if !e.Equal(&back) {
		t.Errorf("json round trip: %s != %s", e, &back)
	}
}

func TestElementsCopy(t *testing.T) {
	p, err := ParseMatrix("a;x=1/b")
	if err != nil {
		t.Fatal(err)
	}
	es := p.Elements()
	es[0] = NewElement("changed")
	if d := cmp.Diff("a;x=1/b", p.String()); d != "" {
		t.Errorf("Elements() exposed internal slice:\n%s", d)
	}
}
