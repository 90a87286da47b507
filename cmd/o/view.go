package main

import (
	"io"

	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return runView(cfg, cc.In, cc.Out, args)
}

func runView(cfg *ViewConfig, in io.Reader, out io.Writer, files []string) error {
	return eachInput(cfg.MainConfig, in, files, func(_ string, n *ir.Node) error {
		return cfg.write(out, n)
	})
}
