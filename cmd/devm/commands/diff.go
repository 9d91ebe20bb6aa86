package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %v", cli.ErrUsage, args)
	}
	tool := cfg.main.tool(cc)
	if cfg.Text {
		text, err := tool.TextDiff(args[0], args[1])
		if err != nil {
			return fail("diff", err)
		}
		if text == "" {
			return nil
		}
		fmt.Fprint(cc.Out, text)
		return cli.ExitCodeErr(1)
	}
	changes, err := tool.Diff(args[0], args[1])
	if err != nil {
		return fail("diff", err)
	}
	if len(changes) == 0 {
		return nil
	}
	if err := libdiff.WriteChanges(cc.Out, changes); err != nil {
		return fail("diff", err)
	}
	return cli.ExitCodeErr(1)
}
