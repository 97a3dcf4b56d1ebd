// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command aheui runs an Aheui program from a source file.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

type Context struct {
	context.Context
	kctx *kong.Context
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("aheui"),
		kong.Description("Aheui interpreter"),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(&Context{
		Context: ctx,
		kctx:    kctx,
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	kctx.FatalIfErrorf(err)
}
