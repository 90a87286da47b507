package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hertig-family/MicroCPPON/ir"
	"github.com/Hertig-family/MicroCPPON/parse"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{NameKey: nameKeyDefault()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, compact/c, net/n, dump/d, cdump, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "o").
		WithSynopsis("o [opts] command [opts]").
		WithDescription("o is a tool for working with cppon objects.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			PatchCommand(cfg),
			ProbeCommand(cfg),
			WatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view object files, or a stream of objects on stdin").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithOpts(opts...).
		WithSynopsis("dump [-C] [files]").
		WithDescription("dump objects as indented text").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("cv").
		WithSynopsis("convert <in> <out>").
		WithDescription("convert an object file, choosing formats and compression by extension").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithOpts(opts...).
		WithSynopsis("get [-i] <objectpath> [files]").
		WithDescription("get object elements from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name: "e",
		Type: cli.NamedFuncOpt(cli.FuncOpt(setOptTypeFunc(cfg)), "(path=val)"),
	})
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set -e path=val [-e path2=val2]... [files]").
		WithDescription("set object elements").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func setOptTypeFunc(cfg *SetConfig) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		path, v, ok := strings.Cut(a, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: expected path=val, got %q", cli.ErrUsage, a)
		}
		val, err := parse.Parse([]byte(v))
		if err != nil {
			val = ir.FromGuess(v)
		}
		cfg.Env = append(cfg.Env, setArg{path: path, val: val})
		return 0, nil
	}
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("filter -e <expr> [files]").
		WithDescription("keep objects, or array elements, for which expr holds").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	loopEveryOpt := &cli.Opt{
		Name: "loopEvery",
		Type: cli.FuncOpt(cfg.mkLoopEvery()),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, loopEveryOpt)

	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b or diff -loop <cmd>").
		WithDescription("diff object documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("merge [-u] <target> <sources>...").
		WithDescription("merge or update a target object with sources, in order").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> <file>").
		WithDescription("apply a json patch or json merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ProbeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProbeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("probe").
		WithAliases("pr").
		WithOpts(opts...).
		WithSynopsis("probe [-r] <key> [files]").
		WithDescription("find a key in net string input without decoding it").
		WithRun(func(cc *cli.Context, args []string) error {
			return probe(cfg, cc, args)
		})
	cfg.Probe = cmd
	return cmd
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg, Settle: 200 * time.Millisecond}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "settle",
		Description: "time to wait for writes to settle",
		Type:        cli.FuncOpt(cfg.mkSettle()),
	})
	cmd := cli.NewCommand("watch").
		WithAliases("w").
		WithOpts(opts...).
		WithSynopsis("watch [-settle d] <file>").
		WithDescription("print the diff of a file each time it changes").
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
	cfg.Watch = cmd
	return cmd
}
