package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Hertig-family/MicroCPPON/parse"

	"github.com/scott-cotton/cli"
)

func probe(cfg *ProbeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Probe.Parse(cc, args)
	if err != nil {
		cfg.Probe.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runProbe(cfg, cc.In, cc.Out, args)
}

func runProbe(cfg *ProbeConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: probe requires a key", cli.ErrUsage)
	}
	key, files := args[0], args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	missing := 0
	for _, file := range files {
		d, err := readRaw(in, file)
		if err != nil {
			return err
		}
		val, tag, _, ok := parse.FindTNetStringArg(d, key)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: no key %q\n", file, key)
			missing++
			continue
		}
		if cfg.Raw {
			if _, err := fmt.Fprintf(out, "%s\n", val); err != nil {
				return err
			}
			continue
		}
		net := make([]byte, 0, len(val)+24)
		net = strconv.AppendInt(net, int64(len(val)), 10)
		net = append(net, ':')
		net = append(net, val...)
		net = append(net, tag)
		n, err := parse.ParseNetString(net)
		if err != nil {
			return fmt.Errorf("error decoding value of %q in %s: %w", key, file, err)
		}
		if err := cfg.write(out, n); err != nil {
			return err
		}
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readRaw(in io.Reader, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}
