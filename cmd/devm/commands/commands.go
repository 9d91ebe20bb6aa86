package commands

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm/eval"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "devm").
		WithSynopsis("devm [opts] command [opts]").
		WithDescription("devm merges and converts JSON, YAML and INI configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return devmMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			ComposeCommand(cfg))
}

// MergeMain is the standalone merge command, carrying the main options
// itself.
func MergeMain(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := mergeCommand(cfg, opts...)
	cfg.Main = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	return mergeCommand(mainCfg)
}

func mergeCommand(mainCfg *MainConfig, extra ...*cli.Opt) *cli.Command {
	cfg := &MergeConfig{main: mainCfg, Env: eval.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "format",
			Description: "source format: json/j, yaml/y, ini/i (default from extensions)",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.Format), "(format)"),
		},
		&cli.Opt{
			Name:        "set",
			Description: "after merging, set path to a YAML value (repeatable)",
			Type:        cli.NamedFuncOpt(cfg.setOpt, "(path=val)"),
		},
		&cli.Opt{
			Name:        "e",
			Description: "define an expansion variable for -expand (repeatable)",
			Type:        cli.NamedFuncOpt(cfg.envOpt, "(path=val)"),
		})
	opts = append(opts, extra...)
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-format f] [-o path | -std-output] source source...").
		WithDescription("merge documents in order; later sources take precedence").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{main: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "format",
			Aliases:     []string{"I"},
			Description: "input format: json/j, yaml/y, ini/i",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "to",
			Aliases:     []string{"O"},
			Description: "output format: json/j, yaml/y, ini/i",
			Type:        cli.NamedFuncOpt(fmtFunc(&cfg.OutFormat), "(format)"),
		})
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-format f] [-to f] [-o path] file").
		WithDescription("convert a document between formats").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{main: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <kpath> file").
		WithDescription("print the value at a kinded path such as a.b[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{main: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-text] a b").
		WithDescription("diff two documents; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{main: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-o path] patchfile file").
		WithDescription("apply an RFC 6902 JSON patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func ComposeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ComposeConfig{main: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "feature",
		Description: "add a devcontainer feature, optionally pinned (repeatable)",
		Type:        cli.NamedFuncOpt(cfg.featureOpt, "(id[=version])"),
	})
	return cli.NewCommandAt(&cfg.Compose, "compose").
		WithSynopsis("compose [-image ref] [-feature id[=version]]... [-name n] [-o path] base [fragment...]").
		WithDescription("compose a devcontainer.json from a base and fragments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compose(cfg, cc, args)
		})
}
