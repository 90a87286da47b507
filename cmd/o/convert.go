package main

import (
	"fmt"
	"io"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/objfile"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runConvert(cfg, cc.In, cc.Out, args)
}

func runConvert(cfg *ConvertConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: convert requires 2 args, got %v", cli.ErrUsage, args)
	}
	n, err := getObjFile(in, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	var opts []encode.EncodeOption
	if cfg.OutFormat != nil {
		opts = append(opts, encode.EncodeFormat(*cfg.OutFormat))
	}
	if args[1] == "-" {
		return objfile.SaveWriter(out, "-", n, opts...)
	}
	if err := objfile.Save(args[1], n, opts...); err != nil {
		return fmt.Errorf("error saving %s: %w", args[1], err)
	}
	return nil
}
