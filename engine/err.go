package engine

import (
	"errors"

	"github.com/ezrec/aheui/translate"
)

var f = translate.From

var (
	ErrEmptyProgram = errors.New(f("empty program"))
	ErrHalted       = errors.New(f("step after halt"))
	ErrInput        = errors.New(f("input"))
	ErrOutput       = errors.New(f("output"))
)

// ErrDivideByZero reports the cell that divided by zero.
type ErrDivideByZero Point

func (err ErrDivideByZero) Error() string {
	return f("divide by 0 at (%d, %d)", err.X, err.Y)
}

func (err ErrDivideByZero) Is(target error) (ok bool) {
	_, ok = target.(ErrDivideByZero)
	return
}
