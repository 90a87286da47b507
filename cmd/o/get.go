package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runGet(cfg, cc.In, cc.Out, args)
}

func runGet(cfg *GetConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	missing := 0
	err := eachInput(cfg.MainConfig, in, args[1:], func(name string, n *ir.Node) error {
		var v *ir.Node
		if cfg.Case {
			v = n.FindCaseElement(path)
		} else {
			v = n.FindElement(path)
		}
		if v == nil {
			fmt.Fprintf(os.Stderr, "%s: no element at %q\n", name, path)
			missing++
			return nil
		}
		return cfg.write(out, v)
	})
	if err != nil {
		return err
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
