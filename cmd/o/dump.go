package main

import (
	"io"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return runDump(cfg, cc.In, cc.Out, args)
}

func runDump(cfg *DumpConfig, in io.Reader, out io.Writer, files []string) error {
	f := format.DumpFormat
	if cfg.C {
		f = format.CDumpFormat
	}
	return eachInput(cfg.MainConfig, in, files, func(_ string, n *ir.Node) error {
		return cfg.write(out, n, encode.EncodeFormat(f))
	})
}
