package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Hertig-family/MicroCPPON/encode"
	"github.com/Hertig-family/MicroCPPON/format"
	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/libdiff"
	"github.com/Hertig-family/MicroCPPON/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Compact bool   `cli:"name=c desc='output compact json'"`
	Strict  bool   `cli:"name=strict desc='accept only json and net strings'"`
	NameKey string `cli:"name=k aliases=key desc='key naming array elements'"`
	Verbose bool   `cli:"name=v desc='log to stderr'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func nameKeyDefault() string {
	if k, ok := os.LookupEnv("O_NAME_KEY"); ok {
		return k
	}
	return libdiff.DefaultNameKey
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.Strict(cfg.Strict)}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Compact {
		return format.CompactFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.TrailingNewline(true),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	C bool `cli:"name=C desc='dump as c declarations'"`

	Dump *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig
	Case bool `cli:"name=i desc='match keys ignoring case'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Env []setArg

	Set *cli.Command
}

type setArg struct {
	path string
	val  *ir.Node
}

type FilterConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='boolean expression over fields'"`

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text      bool   `cli:"name=text desc='show a line diff instead of a delta'"`
	Loop      string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type MergeConfig struct {
	*MainConfig
	Update bool `cli:"name=u desc='update in place instead of merging'"`

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=m desc='patch is a json merge patch'"`
	String     bool `cli:"name=s desc='patch arg as string'"`
	File       bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type ProbeConfig struct {
	*MainConfig
	Raw bool `cli:"name=r desc='print the raw payload'"`

	Probe *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Settle time.Duration

	Watch *cli.Command
}

func (cfg *WatchConfig) mkSettle() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Settle = d
		return d, nil
	}
}
