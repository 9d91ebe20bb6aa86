package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm/format"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a file, got %v", cli.ErrUsage, args)
	}
	tool := cfg.main.tool(cc)
	res, err := tool.Patch(args[0], args[1])
	if err != nil {
		return fail("patch", err)
	}
	f, err := format.FromPath(args[1])
	if cfg.Out != "" {
		if of, oerr := format.FromPath(cfg.Out); oerr == nil {
			f, err = of, nil
		}
	}
	if err != nil {
		return fail("patch", err)
	}
	if err := tool.Write(res, cfg.Out, f); err != nil {
		return fail("patch", err)
	}
	return nil
}
