package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm"
	"github.com/monodev/devm/devcontainer"
)

func compose(cfg *ComposeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compose.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: compose requires a base file", cli.ErrUsage)
	}
	tool := cfg.main.tool(cc)
	tool.Policy = policy(cfg.Strict)
	err = tool.Compose(cfg.main.context(), &devm.ComposeRequest{
		Base:      args[0],
		Fragments: args[1:],
		Options: devcontainer.Options{
			Name:     cfg.Name,
			Image:    cfg.Image,
			Features: cfg.Features,
		},
		Out: cfg.Out,
	})
	if err != nil {
		return fail("compose", err)
	}
	return nil
}
