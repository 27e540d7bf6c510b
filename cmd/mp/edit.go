package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mpath-dev/mpath"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: edit requires 1 argument, a json patch", cli.ErrUsage)
	}
	patch, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	paths, err := pathArgs(cc, args[1:])
	if err != nil {
		return err
	}
	c := cfg.colors(cc.Out)
	for _, in := range paths {
		out, err := editPath(patch, in)
		if err != nil {
			return fmt.Errorf("error editing %q: %w", in, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", colorizePath(c, out, mpath.MatrixOps)); err != nil {
			return err
		}
	}
	return nil
}

func getPatch(cfg *EditConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if cfg.File {
		var err error
		switch arg {
		case "-":
			d, err = io.ReadAll(cc.In)
		default:
			d, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, err
		}
	}
	return jsonpatch.DecodePatch(d)
}

// editPath round-trips a matrix path through its element JSON form,
// applying the patch to the element list.
func editPath(patch jsonpatch.Patch, in string) (string, error) {
	p, err := mpath.ParseMatrix(in)
	if err != nil {
		return "", err
	}
	doc, err := json.Marshal(p.Elements())
	if err != nil {
		return "", err
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return "", err
	}
	var elems []*mpath.Element
	if err := json.Unmarshal(out, &elems); err != nil {
		return "", err
	}
	return mpath.FromElements(elems...).String(), nil
}
