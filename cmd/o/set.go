package main

import (
	"fmt"
	"io"

	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runSet(cfg, cc.In, cc.Out, args)
}

func runSet(cfg *SetConfig, in io.Reader, out io.Writer, files []string) error {
	if len(cfg.Env) == 0 {
		return fmt.Errorf("%w: set requires at least one -e path=val", cli.ErrUsage)
	}
	return eachInput(cfg.MainConfig, in, files, func(name string, n *ir.Node) error {
		if err := applySets(n, cfg.Env); err != nil {
			return fmt.Errorf("error setting %s: %w", name, err)
		}
		return cfg.write(out, n)
	})
}

func applySets(n *ir.Node, sets []setArg) error {
	for _, s := range sets {
		if err := n.Set(s.path, s.val.Clone()); err != nil {
			return fmt.Errorf("%s: %w", s.path, err)
		}
	}
	return nil
}
