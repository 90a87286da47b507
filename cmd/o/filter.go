package main

import (
	"fmt"
	"io"

	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/query"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runFilter(cfg, cc.In, cc.Out, args)
}

func runFilter(cfg *FilterConfig, in io.Reader, out io.Writer, files []string) error {
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -e <expr>", cli.ErrUsage)
	}
	f, err := query.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachInput(cfg.MainConfig, in, files, func(name string, n *ir.Node) error {
		if n.IsArray() {
			res, err := query.Select(n, f)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", name, err)
			}
			return cfg.write(out, res)
		}
		ok, err := f.Match(n)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", name, err)
		}
		if !ok {
			return nil
		}
		return cfg.write(out, n)
	})
}
