package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: convert requires 1 file, got %d", cli.ErrUsage, len(args))
	}
	tool := cfg.main.tool(cc)
	if err := tool.Convert(args[0], cfg.InFormat, cfg.OutFormat, cfg.Out); err != nil {
		return fail("convert", err)
	}
	return nil
}
