package main

import (
	"fmt"
	"io"

	"github.com/Hertig-family/MicroCPPON/libdiff"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runMerge(cfg, cc.In, cc.Out, args)
}

func runMerge(cfg *MergeConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a target and at least one source", cli.ErrUsage)
	}
	target, err := getObjFile(in, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	apply, verb := libdiff.Merge, "merging"
	if cfg.Update {
		apply, verb = libdiff.Update, "updating"
	}
	for _, arg := range args[1:] {
		src, err := getObjFile(in, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := apply(target, src, cfg.NameKey); err != nil {
			return fmt.Errorf("error %s %s: %w", verb, arg, err)
		}
	}
	return cfg.write(out, target)
}
