package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/ngrams/internal/commands"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "ngrams"))
	config, err := commands.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	cli.Main(ctx, commands.NewMux(config.Logger()))
}
