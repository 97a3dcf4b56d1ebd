// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives an engine to completion on behalf of a command.
package emulator

import (
	"context"
	"log/slog"

	"github.com/ezrec/aheui/engine"
	"github.com/ezrec/aheui/io"
)

// Watch is consulted after every step; a hit stops the run.
type Watch interface {
	Hit(eng *engine.Engine) (hit bool, err error)
}

// Emulator state. Engine + console + run policy.
type Emulator struct {
	Verbose        bool // If set, the engine logs every step.
	*engine.Engine      // Reference to the running program.

	Source   string       // Program text, kept for Reset.
	Console  io.Console   // Console handed to the engine.
	Logger   *slog.Logger // Destination of step and exit records.
	MaxSteps int          // Stop after this many steps. Zero is unlimited.
	Watch    Watch        // Optional breakpoint.

	Hook func(eng *engine.Engine) // Called by Run after every tick.
}

// NewEmulator creates an emulator for source text.
func NewEmulator(source string, console io.Console) (emu *Emulator, err error) {
	emu = &Emulator{
		Source:  source,
		Console: console,
	}

	err = emu.Reset()
	if err != nil {
		emu = nil
		return
	}

	return
}

// Reset reloads the program and clears all state.
func (emu *Emulator) Reset() (err error) {
	eng, err := engine.NewEngine(emu.Source, emu.Console)
	if err != nil {
		return
	}

	emu.Engine = eng

	return
}

func (emu *Emulator) logger() *slog.Logger {
	if emu.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return emu.Logger
}

// Tick performs a single step of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	eng := emu.Engine

	if eng.Halted() {
		done = true
		return
	}

	if emu.Verbose {
		eng.Logger = emu.Logger
	} else {
		eng.Logger = nil
	}

	at := eng.Cursor
	step := eng.Steps + 1
	defer func() {
		if err != nil {
			err = &ErrRuntime{Step: step, At: at, Err: err}
		}
	}()

	err = eng.Step()
	if err != nil {
		return
	}

	if ex, ok := eng.Exit(); ok {
		done = true
		attrs := []any{"kind", ex.Kind.String(), "steps", eng.Steps}
		if ex.Kind == engine.EXIT_DIVIDE_BY_ZERO {
			attrs = append(attrs, "x", ex.At.X, "y", ex.At.Y)
		} else {
			attrs = append(attrs, "value", ex.Value.String())
		}
		emu.logger().Info("exit", attrs...)
		return
	}

	if emu.Watch != nil {
		var hit bool
		hit, err = emu.Watch.Hit(eng)
		if err != nil {
			return
		}
		if hit {
			err = ErrBreakpoint
			return
		}
	}

	if emu.MaxSteps > 0 && eng.Steps >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	return
}

// Run ticks until the program halts, an error occurs, or ctx is done.
func (emu *Emulator) Run(ctx context.Context) (exit engine.Exit, err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var done bool
		done, err = emu.Tick()
		if emu.Hook != nil {
			emu.Hook(emu.Engine)
		}
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	exit, _ = emu.Engine.Exit()

	return
}
