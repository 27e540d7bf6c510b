package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

// buildVersion is overridden with -ldflags at release time.
var buildVersion = "devel"

func version(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cc.Out, "mp %s\n", buildVersion)
	return err
}
