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
	cli.MainContext(ctx, commands.MainCommand(ctx))
}
