package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ezrec/aheui/debugger"
	"github.com/ezrec/aheui/emulator"
	"github.com/ezrec/aheui/engine"
	aio "github.com/ezrec/aheui/io"
	"github.com/ezrec/aheui/logs"
	"github.com/ezrec/aheui/translate"
)

// CLI is the command line of the interpreter.
type CLI struct {
	File string `arg:"" type:"existingfile" help:"Aheui source code"`

	Debug    bool   `short:"d" help:"Print the machine state after every step"`
	Verbose  bool   `short:"v" help:"Log every step to stderr"`
	Trace    string `type:"path" help:"Write a JSON trace of every step to this file"`
	Break    string `placeholder:"EXPR" help:"Stop when this starlark expression is true"`
	MaxSteps int    `name:"max-steps" help:"Stop after this many steps (0 is unlimited)" default:"0"`

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (cli *CLI) streams() (stdin io.Reader, stdout io.Writer, stderr io.Writer) {
	stdin, stdout, stderr = cli.stdin, cli.stdout, cli.stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return
}

// Run loads the source file and runs it to completion.
func (cli *CLI) Run(ctx *Context) (err error) {
	stdin, stdout, stderr := cli.streams()

	source, err := os.ReadFile(cli.File)
	if err != nil {
		return
	}

	opts := logs.Options{
		Verbose: cli.Verbose,
	}
	if len(cli.Trace) != 0 {
		var trace *os.File
		trace, err = os.Create(cli.Trace)
		if err != nil {
			return
		}
		defer trace.Close()
		opts.Trace = trace
	}
	logger := logs.New(stderr, opts).With("file", cli.File)

	// Diagnostic mode never touches the terminal; output is reported once the program stops.
	var console aio.Console = aio.Headless{}
	if !cli.Debug {
		console = &aio.Terminal{
			Input:  stdin,
			Output: stdout,
		}
	}

	emu, err := emulator.NewEmulator(string(source), console)
	if err != nil {
		return fmt.Errorf("%v: %w", cli.File, err)
	}
	emu.Logger = logger
	emu.Verbose = cli.Verbose || opts.Trace != nil
	emu.MaxSteps = cli.MaxSteps

	if len(cli.Break) != 0 {
		var bp *debugger.Breakpoint
		bp, err = debugger.NewBreakpoint(cli.Break)
		if err != nil {
			return
		}
		emu.Watch = bp
	}

	rd := debugger.NewRenderer(stdout)
	if cli.Debug {
		emu.Hook = func(eng *engine.Engine) {
			fmt.Fprintln(stdout, rd.Render(eng))
		}
	}

	ex, err := emu.Run(ctx)
	if errors.Is(err, emulator.ErrBreakpoint) {
		logger.Info("breakpoint", "expr", cli.Break, "steps", emu.Steps)
		if !cli.Debug {
			fmt.Fprintln(stdout, rd.Render(emu.Engine))
		}
		return nil
	}
	if err != nil {
		return
	}

	report(stdout, emu.Engine, ex, cli.Debug)

	if ex.Kind != engine.EXIT_SUCCESS {
		logger.Warn("abnormal exit", "err", ex.Err())
	}

	return
}

// report prints the closing lines for a stopped program.
func report(w io.Writer, eng *engine.Engine, ex engine.Exit, debug bool) {
	p := translate.Printer()

	p.Fprintln(w)
	if debug {
		p.Fprintf(w, "Final result: %s\n", eng.Output())
	}

	switch ex.Kind {
	case engine.EXIT_DIVIDE_BY_ZERO:
		p.Fprintf(w, "divide by 0 at (%d, %d)\n", ex.At.X, ex.At.Y)
	default:
		if debug {
			p.Fprintf(w, "Finished, %v\n", ex)
		}
	}
}
