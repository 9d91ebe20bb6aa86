package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/monodev/devm"
	"github.com/monodev/devm/devcontainer"
	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/eval"
	"github.com/monodev/devm/format"
	"github.com/monodev/devm/mergeop"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Color   bool `cli:"name=color desc='color output (default on for terminals)'"`

	ctx  context.Context
	Main *cli.Command
}

func (cfg *MainConfig) logger() *slog.Logger {
	return NewLogger(os.Stderr, cfg.Verbose)
}

// tool builds a devm.Tool writing to cc.Out.
func (cfg *MainConfig) tool(cc *cli.Context) *devm.Tool {
	t := devm.DefaultTool()
	t.Log = cfg.logger()
	t.Stdout = cc.Out
	if cfg.useColor(cfg.Main, cc.Out) {
		t.Colors = encode.NewColors()
	}
	return t
}

func (cfg *MainConfig) useColor(cmd *cli.Command, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cmd != nil {
		for _, opt := range cmd.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) context() context.Context {
	if cfg.ctx == nil {
		return context.Background()
	}
	return cfg.ctx
}

func fmtFunc(fps ...**format.Format) cli.FuncOpt {
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

func policy(strict bool) mergeop.Policy {
	if strict {
		return mergeop.Strict
	}
	return mergeop.Overwrite
}

type MergeConfig struct {
	Out    string `cli:"name=o aliases=output desc='output file, which must not exist'"`
	StdOut bool   `cli:"name=std-output desc='write the result to standard output'"`
	Strict bool   `cli:"name=strict desc='fail on nested type conflicts'"`
	Check  bool   `cli:"name=check desc='compare the result with the existing output file'"`
	Expand bool   `cli:"name=expand desc='expand $[...] expressions in strings'"`

	Format *format.Format
	Sets   []devm.Assignment
	Env    eval.Env

	main  *MainConfig
	Merge *cli.Command
}

func (cfg *MergeConfig) setOpt(_ *cli.Context, a string) (any, error) {
	asg, err := devm.ParseAssignment(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Sets = append(cfg.Sets, asg)
	return 0, nil
}

func (cfg *MergeConfig) envOpt(_ *cli.Context, a string) (any, error) {
	asg, err := devm.ParseAssignment(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if err := asg.SetEnv(cfg.Env); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return 0, nil
}

type ConvertConfig struct {
	Out string `cli:"name=o aliases=output desc='output file, which must not exist (default stdout)'"`

	InFormat, OutFormat *format.Format

	main    *MainConfig
	Convert *cli.Command
}

type GetConfig struct {
	main *MainConfig
	Get  *cli.Command
}

type DiffConfig struct {
	Text bool `cli:"name=text desc='show a line diff of the encoded documents'"`

	main *MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	Out string `cli:"name=o aliases=output desc='output file, which must not exist (default stdout)'"`

	main  *MainConfig
	Patch *cli.Command
}

type ComposeConfig struct {
	Image  string `cli:"name=image desc='container image reference'"`
	Name   string `cli:"name=name desc='devcontainer name'"`
	Out    string `cli:"name=o aliases=output desc='output file, which must not exist (default stdout)'"`
	Strict bool   `cli:"name=strict desc='fail on nested type conflicts'"`

	Features []devcontainer.Feature

	main    *MainConfig
	Compose *cli.Command
}

func (cfg *ComposeConfig) featureOpt(_ *cli.Context, a string) (any, error) {
	f, err := devcontainer.ParseFeature(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Features = append(cfg.Features, f)
	return 0, nil
}
