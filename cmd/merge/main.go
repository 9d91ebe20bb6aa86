// Command merge merges two or more JSON, YAML or INI documents.
//
//	merge [-format json|yaml|ini] [-o path | -std-output] source source...
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"

	"github.com/monodev/devm/cmd/devm/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.MainContext(ctx, commands.MergeMain(ctx))
}
