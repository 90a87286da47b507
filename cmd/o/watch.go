package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Hertig-family/MicroCPPON/debug"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 || args[0] == "-" {
		return fmt.Errorf("%w: watch requires one file", cli.ErrUsage)
	}
	file, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	last, err := getObjFile(cc.In, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := cfg.write(cc.Out, last); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create watcher: %w", err)
	}
	defer w.Close()
	// editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("unable to watch %s: %w", file, err)
	}

	dc := &DiffConfig{MainConfig: cfg.MainConfig}
	settle := time.NewTimer(cfg.Settle)
	settle.Stop()
	sep := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != file || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			settle.Reset(cfg.Settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			debug.Log().Warnw("watch error", "file", file, "error", err)
		case <-settle.C:
			next, err := getObjFile(cc.In, file, cfg.parseOpts()...)
			if err != nil {
				debug.Log().Warnw("reload failed", "file", file, "error", err)
				continue
			}
			differs, err := diffInputs(dc, cc.Out, last, next, sep)
			if err != nil {
				return err
			}
			sep = sep || differs
			last = next
		}
	}
}

