package emulator

import (
	"errors"

	"github.com/ezrec/aheui/engine"
	"github.com/ezrec/aheui/translate"
)

var f = translate.From

var (
	ErrStepLimit  = errors.New(f("step limit reached"))
	ErrBreakpoint = errors.New(f("breakpoint"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Step int
	At   engine.Point
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d at (%d, %d) %v", err.Step, err.At.X, err.At.Y, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
