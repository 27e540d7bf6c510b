package pathdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type diffTest struct {
	a, b string
	want Edits
}

var diffTests = []diffTest{
	{
		a:    "a/b/c",
		b:    "a/b/c",
		want: Edits{{Keep, "a"}, {Keep, "b"}, {Keep, "c"}},
	},
	{
		a:    "a/b/c",
		b:    "a/x/c",
		want: Edits{{Keep, "a"}, {Del, "b"}, {Ins, "x"}, {Keep, "c"}},
	},
	{
		a:    "a/b",
		b:    "a/b/c",
		want: Edits{{Keep, "a"}, {Keep, "b"}, {Ins, "c"}},
	},
	{
		a:    "a/b/c",
		b:    "b/c",
		want: Edits{{Del, "a"}, {Keep, "b"}, {Keep, "c"}},
	},
	{
		a:    "",
		b:    "x/y",
		want: Edits{{Ins, "x"}, {Ins, "y"}},
	},
	{
		a:    "",
		b:    "",
		want: nil,
	},
	{
		// segments with escaped operators diff as whole units
		a:    `a\/b/c`,
		b:    `a\/b/d`,
		want: Edits{{Keep, "a/b"}, {Del, "c"}, {Ins, "d"}},
	},
}

func TestDiff(t *testing.T) {
	for _, dt := range diffTests {
		got := DiffStrings(dt.a, dt.b)
		if d := cmp.Diff(dt.want, got); d != "" {
			t.Errorf("DiffStrings(%q, %q) (-want +got):\n%s", dt.a, dt.b, d)
		}
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		in   Edits
		want Edits
	}{
		{
			in:   Edits{{Keep, "a"}, {Del, "b"}, {Ins, "x"}, {Keep, "c"}},
			want: Edits{{Keep, "a"}, {Del, "x"}, {Ins, "b"}, {Keep, "c"}},
		},
		{
			in:   Edits{{Ins, "x"}, {Ins, "y"}},
			want: Edits{{Del, "x"}, {Del, "y"}},
		},
		{
			in:   Edits{{Del, "a"}, {Del, "b"}, {Keep, "c"}},
			want: Edits{{Ins, "a"}, {Ins, "b"}, {Keep, "c"}},
		},
		{
			in:   nil,
			want: nil,
		},
	}
	for _, tc := range tests {
		if d := cmp.Diff(tc.want, tc.in.Reverse()); d != "" {
			t.Errorf("Reverse(%v) (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestChanged(t *testing.T) {
	if DiffStrings("a/b", "a/b").Changed() {
		t.Errorf("identical paths report change")
	}
	if !DiffStrings("a/b", "a/c").Changed() {
		t.Errorf("differing paths report no change")
	}
}

func TestEditsString(t *testing.T) {
	es := DiffStrings("a/b", "a/c")
	want := "  a\n- b\n+ c"
	if got := es.String(); got != want {
		t.Errorf("String() = %q want %q", got, want)
	}
}

func TestIntra(t *testing.T) {
	ds := Intra("version-1", "version-2")
	var eq, del, ins bool
	for _, d := range ds {
		switch d.Type {
		case diffpatch.DiffEqual:
			eq = true
		case diffpatch.DiffDelete:
			del = true
		case diffpatch.DiffInsert:
			ins = true
		}
	}
	if !eq || !del || !ins {
		t.Errorf("Intra gave %v", ds)
	}
}
