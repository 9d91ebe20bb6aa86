package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm"
)

func devmMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// fail reports err and selects the exit code: 2 for invalid arguments, 1
// otherwise.
func fail(name string, err error) error {
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	return cli.ExitCodeErr(exitCode(err))
}

func exitCode(err error) int {
	if errors.Is(err, devm.ErrValidation) {
		return 2
	}
	return 1
}
