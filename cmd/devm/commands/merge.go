package commands

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	tool := cfg.main.tool(cc)
	tool.Policy = policy(cfg.Strict)
	tool.Expand = cfg.Expand
	tool.Env = cfg.Env
	err = tool.Merge(cfg.main.context(), cfg.request(args))
	var de *devm.DriftError
	if errors.As(err, &de) {
		fmt.Fprint(cc.Out, de.Diff)
	}
	if err != nil {
		return fail("merge", err)
	}
	return nil
}

func (cfg *MergeConfig) request(args []string) *devm.MergeRequest {
	return &devm.MergeRequest{
		Sources: args,
		Format:  cfg.Format,
		Out:     cfg.Out,
		StdOut:  cfg.StdOut,
		Check:   cfg.Check,
		Sets:    cfg.Sets,
	}
}
