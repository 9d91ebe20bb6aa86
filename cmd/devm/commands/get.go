package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm/format"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a path and a file, got %v", cli.ErrUsage, args)
	}
	tool := cfg.main.tool(cc)
	res, err := tool.Get(args[1], args[0])
	if err != nil {
		return fail("get", err)
	}
	f, err := format.FromPath(args[1])
	if err != nil || f == format.INIFormat {
		f = format.JSONFormat
	}
	if err := tool.Write(res, "", f); err != nil {
		return fail("get", err)
	}
	return nil
}
