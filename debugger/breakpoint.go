package debugger

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/aheui/engine"
	"github.com/ezrec/aheui/storage"
	"github.com/ezrec/aheui/translate"
)

var f = translate.From

var (
	ErrBreakpointSyntax = errors.New(f("breakpoint syntax"))
	ErrBreakpointResult = errors.New(f("breakpoint result missing"))
)

// Breakpoint is a starlark condition over the engine state.
//
// The condition sees step, x, y, dx, dy, prev_x, prev_y, selected, depth
// (of the selected slot), cell and output, and the function slot(n) which
// returns the contents of slot n, front-most first.
type Breakpoint struct {
	Expr string

	opts   syntax.FileOptions
	source string
}

// NewBreakpoint checks the syntax of a condition.
func NewBreakpoint(expr string) (bp *Breakpoint, err error) {
	bp = &Breakpoint{
		Expr:   expr,
		source: "rc=" + expr + "\n",
	}

	_, err = bp.opts.Parse("break", bp.source, 0)
	if err != nil {
		err = errors.Join(ErrBreakpointSyntax, err)
		bp = nil
		return
	}

	return
}

func predeclared(eng *engine.Engine) starlark.StringDict {
	slot := starlark.NewBuiltin("slot", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var n int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &n)
		if err != nil {
			return nil, err
		}
		if n < 0 || n >= storage.SLOT_COUNT {
			return nil, errors.New(f("slot %d out of range", n))
		}
		var list []starlark.Value
		for _, v := range eng.Bank.Slot[n].Values() {
			list = append(list, starlark.MakeBigInt(v))
		}
		return starlark.NewList(list), nil
	})

	return starlark.StringDict{
		"step":     starlark.MakeInt(eng.Steps),
		"x":        starlark.MakeInt(eng.Cursor.X),
		"y":        starlark.MakeInt(eng.Cursor.Y),
		"dx":       starlark.MakeInt(eng.Dir.X),
		"dy":       starlark.MakeInt(eng.Dir.Y),
		"prev_x":   starlark.MakeInt(eng.Prev.X),
		"prev_y":   starlark.MakeInt(eng.Prev.Y),
		"selected": starlark.MakeInt(eng.Selected),
		"depth":    starlark.MakeInt(eng.Bank.Depth(eng.Selected)),
		"cell":     starlark.String(eng.Current().String()),
		"output":   starlark.String(eng.Output()),
		"slot":     slot,
	}
}

// Hit evaluates the condition against the engine.
func (bp *Breakpoint) Hit(eng *engine.Engine) (hit bool, err error) {
	thread := &starlark.Thread{Name: "break"}

	dict, err := starlark.ExecFileOptions(&bp.opts, thread, "break", bp.source, predeclared(eng))
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrBreakpointResult
		return
	}

	hit = bool(rc.Truth())
	return
}
