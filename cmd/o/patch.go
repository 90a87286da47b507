package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Hertig-family/MicroCPPON/gomap"
	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runPatch(cfg, cc.In, cc.Out, args)
}

func runPatch(cfg *PatchConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	d, err := getish(cfg.String, cfg.File, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getObjFile(in, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *ir.Node
	if cfg.MergePatch {
		p, perr := parse.Parse(d, cfg.parseOpts()...)
		if perr != nil {
			return fmt.Errorf("error decoding patch: %w", perr)
		}
		res, err = gomap.ApplyMergePatch(target, p)
	} else {
		res, err = gomap.ApplyPatch(target, d)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return cfg.write(out, res)
}

// getish reads the patch argument as a literal with -s, as a file with
// -f, and otherwise as a file when one exists by that name.
func getish(s, f bool, arg string) ([]byte, error) {
	if s && f {
		return nil, fmt.Errorf("only one of -s, -f may be specified")
	}
	var r io.Reader
	switch {
	case s:
		r = strings.NewReader(arg)
	case f && arg == "-":
		r = os.Stdin
	default:
		fh, err := os.Open(arg)
		if err != nil {
			if f {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			return []byte(arg), nil
		}
		defer fh.Close()
		r = fh
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}
