package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

// pathArgs returns one path per remaining argument.  The argument "-"
// stands for newline-delimited paths on cc.In, as does an empty
// argument list.
func pathArgs(cc *cli.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return readPaths(cc.In)
	}
	var res []string
	for _, arg := range args {
		if arg != "-" {
			res = append(res, arg)
			continue
		}
		lines, err := readPaths(cc.In)
		if err != nil {
			return nil, err
		}
		res = append(res, lines...)
	}
	return res, nil
}

// loadPaths reads newline-delimited paths from the file arg, or from
// cc.In when arg is "-" or empty.
func loadPaths(cc *cli.Context, arg string) ([]string, error) {
	switch arg {
	case "-", "":
		return readPaths(cc.In)
	default:
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readPaths(f)
	}
}

func readPaths(r io.Reader) ([]string, error) {
	var (
		res     []string
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
