package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/libdiff"
	"github.com/Hertig-family/MicroCPPON/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		return runDiff(cfg, cc.In, cc.Out, args)
	}
	return diffLoop(cfg, cc.Out)
}

// runDiff prints the difference between two object files and returns
// exit code 1 when they differ.
func runDiff(cfg *DiffConfig, in io.Reader, out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(in, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(in, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, out, a, b, false)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffLoop(cfg *DiffConfig, out io.Writer) error {
	last := ir.NewMap()
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for i := 0; i != cfg.LoopLim; i++ {
		next, err := runLoop(cfg)
		if err != nil {
			return err
		}
		differs, err := diffInputs(cfg, out, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		last = next
		<-ticker.C
	}
	return nil
}

func runLoop(cfg *DiffConfig) (*ir.Node, error) {
	cmd := exec.Command("sh", "-c", cfg.Loop)
	r, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
	}
	cmd.WaitDelay = cfg.LoopEvery
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
	}
	next, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding command output: %w", err)
	}
	return next, nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node, sep bool) (bool, error) {
	var text string
	if cfg.Text {
		text = libdiff.TextDiff(a, b)
		if text == "" {
			return false, nil
		}
	}
	d := libdiff.Diff(a, b, cfg.NameKey)
	if !cfg.Text && d == nil {
		return false, nil
	}
	if sep {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := w.Write([]byte("# difference found at " + when + "\n")); err != nil {
			return false, err
		}
	}
	if cfg.Text {
		_, err := io.WriteString(w, text)
		return true, err
	}
	return true, cfg.write(w, d)
}
