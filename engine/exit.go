package engine

import (
	"math/big"
)

// ExitKind is the way a program stopped.
type ExitKind int

//go:generate go tool stringer -linecomment -type=ExitKind
const (
	EXIT_SUCCESS        = ExitKind(0) // success
	EXIT_DIVIDE_BY_ZERO = ExitKind(1) // divide by zero
)

// Exit records how and where a program stopped.
type Exit struct {
	Kind  ExitKind
	Value *big.Int // Value popped by the halt instruction.
	At    Point    // Cell that stopped the program.
}

// Err returns ErrDivideByZero for an abnormal exit, or nil.
func (ex Exit) Err() error {
	if ex.Kind == EXIT_DIVIDE_BY_ZERO {
		return ErrDivideByZero(ex.At)
	}
	return nil
}

func (ex Exit) String() string {
	if ex.Kind == EXIT_DIVIDE_BY_ZERO {
		return ex.Err().Error()
	}
	return f("success(%v)", ex.Value)
}
