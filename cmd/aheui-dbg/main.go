// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command aheui-dbg steps through an Aheui program interactively.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezrec/aheui/debugger"
	"github.com/ezrec/aheui/emulator"
	aio "github.com/ezrec/aheui/io"
)

var CLI struct {
	File  string `arg:"" type:"existingfile" help:"Aheui source code"`
	Input string `short:"i" type:"existingfile" help:"Read program input from this file"`
	Break string `placeholder:"EXPR" help:"Pause a run when this starlark expression is true"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("aheui-dbg"),
		kong.Description("Interactive Aheui stepper"),
	)

	stepper, closer, err := load()
	if err == nil {
		_, err = tea.NewProgram(stepper).Run()
	}
	closer()

	kctx.FatalIfErrorf(err)
}

// load builds the stepper for the parsed command line.
func load() (stepper *debugger.Stepper, closer func(), err error) {
	closer = func() {}

	source, err := os.ReadFile(CLI.File)
	if err != nil {
		return
	}

	// The terminal belongs to the stepper, so reads come from a file or see end of input.
	var console aio.Console = aio.Headless{}
	if len(CLI.Input) != 0 {
		var inf *os.File
		inf, err = os.Open(CLI.Input)
		if err != nil {
			return
		}
		closer = func() { inf.Close() }
		console = &aio.Terminal{Input: inf}
	}

	emu, err := emulator.NewEmulator(string(source), console)
	if err != nil {
		err = fmt.Errorf("%v: %w", CLI.File, err)
		return
	}

	if len(CLI.Break) != 0 {
		var bp *debugger.Breakpoint
		bp, err = debugger.NewBreakpoint(CLI.Break)
		if err != nil {
			return
		}
		emu.Watch = bp
	}

	stepper = debugger.NewStepper(emu, debugger.NewRenderer(os.Stdout))

	return
}
