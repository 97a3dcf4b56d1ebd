// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ezrec/aheui/hangul"
	"github.com/ezrec/aheui/io"
	"github.com/ezrec/aheui/storage"
)

// Engine is the execution state of a single program.
type Engine struct {
	Logger  *slog.Logger // Step log. Nil discards.
	Console io.Console   // Print and read target.

	Grid *Grid
	Bank *storage.Bank

	Cursor   Point // Cell to execute next.
	Dir      Point // Direction of travel.
	Prev     Point // Cell executed last.
	Selected int   // Selected storage slot.
	Steps    int   // Steps taken.

	output strings.Builder
	exit   *Exit
}

// NewEngine decodes source text into a ready-to-run engine.
// A nil console is treated as io.Headless.
func NewEngine(source string, console io.Console) (eng *Engine, err error) {
	grid, err := NewGrid(source)
	if err != nil {
		return
	}

	if console == nil {
		console = io.Headless{}
	}

	eng = &Engine{
		Console:  console,
		Grid:     grid,
		Bank:     storage.NewBank(),
		Dir:      Point{0, 1},
		Selected: int(hangul.FINAL_EMPTY),
	}

	return
}

func (eng *Engine) logger() *slog.Logger {
	if eng.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return eng.Logger
}

// Current returns the cell under the cursor.
func (eng *Engine) Current() hangul.KChar {
	return eng.Grid.At(eng.Cursor)
}

// Halted returns true once the program has stopped.
func (eng *Engine) Halted() bool {
	return eng.exit != nil
}

// Exit returns how the program stopped. ok is false while it is running.
func (eng *Engine) Exit() (ex Exit, ok bool) {
	if eng.exit == nil {
		return
	}
	return *eng.exit, true
}

// Output returns everything the program has printed.
func (eng *Engine) Output() string {
	return eng.output.String()
}

// Step executes the cell under the cursor and moves on.
// Stepping a halted engine panics with ErrHalted. A console error leaves
// the engine as it was before the step.
func (eng *Engine) Step() (err error) {
	if eng.Halted() {
		panic(ErrHalted)
	}

	eng.Steps++
	cell := eng.Current()

	if !cell.Blank() {
		op := OpcodeOf(cell.Initial)

		var valid bool
		valid, err = eng.execute(op, cell)
		if err != nil {
			// Console failures leave the engine untouched, so the step can be retried.
			eng.Steps--
			return
		}

		if eng.Halted() {
			ex := eng.exit
			eng.logger().Debug("halt",
				"step", eng.Steps,
				"x", ex.At.X, "y", ex.At.Y,
				"kind", ex.Kind.String(),
				"value", ex.Value,
			)
			return
		}

		eng.Dir = SteerOf(cell.Medial).Apply(eng.Dir)
		if !valid {
			eng.Dir = eng.Dir.Reverse()
		}

		eng.logger().Debug("step",
			"step", eng.Steps,
			"x", eng.Cursor.X, "y", eng.Cursor.Y,
			"cell", string(cell.Rune),
			"op", op.String(),
			"dx", eng.Dir.X, "dy", eng.Dir.Y,
			"bounce", !valid,
		)
	}

	eng.Prev = eng.Cursor
	eng.Cursor = eng.Grid.Wrap(Point{
		X: eng.Cursor.X + eng.Dir.X,
		Y: eng.Cursor.Y + eng.Dir.Y,
	})

	return
}

// halt stops the program.
func (eng *Engine) halt(kind ExitKind, value *big.Int) {
	eng.exit = &Exit{
		Kind:  kind,
		Value: value,
		At:    eng.Cursor,
	}
}

// execute performs one operation. valid is false when the operation could
// not run, and the caller reverses direction.
func (eng *Engine) execute(op Opcode, cell hangul.KChar) (valid bool, err error) {
	bank := eng.Bank
	sel := eng.Selected

	if bank.Depth(sel) < op.Need() {
		return
	}

	switch op {
	case OP_NOP:
		valid = true
	case OP_HALT:
		eng.halt(EXIT_SUCCESS, bank.Pop(sel))
	case OP_ADD, OP_MUL, OP_SUB, OP_DIV, OP_MOD:
		a := bank.Pop(sel)
		b := bank.Pop(sel)
		result := new(big.Int)
		switch op {
		case OP_ADD:
			result.Add(b, a)
		case OP_MUL:
			result.Mul(b, a)
		case OP_SUB:
			result.Sub(b, a)
		case OP_DIV, OP_MOD:
			// The dividend is checked; a zero divisor stops the program too.
			if b.Sign() == 0 || a.Sign() == 0 {
				eng.halt(EXIT_DIVIDE_BY_ZERO, nil)
				return
			}
			if op == OP_DIV {
				result.Quo(b, a)
			} else {
				result.Rem(b, a)
			}
		}
		bank.Push(sel, result)
		valid = true
	case OP_PRINT:
		value, _ := bank.Slot[sel].Peek()
		var text string
		switch cell.Final {
		case hangul.FINAL_IEUNG:
			text = value.String()
		case hangul.FINAL_HIEUH:
			text = string(toRune(value))
		}
		if len(text) > 0 {
			err = eng.Console.Print(text)
			if err != nil {
				err = errors.Join(ErrOutput, err)
				return
			}
			eng.output.WriteString(text)
		}
		bank.Pop(sel)
		valid = true
	case OP_READ:
		var line string
		switch cell.Final {
		case hangul.FINAL_IEUNG:
			line, err = eng.Console.ReadLine(io.REQUEST_NUMBER)
			if err != nil {
				err = errors.Join(ErrInput, err)
				return
			}
			bank.Push(sel, parseNumber(line))
		case hangul.FINAL_HIEUH:
			line, err = eng.Console.ReadLine(io.REQUEST_CHAR)
			if err != nil {
				err = errors.Join(ErrInput, err)
				return
			}
			for _, r := range line {
				bank.Push(sel, big.NewInt(int64(r)))
			}
		default:
			bank.Push(sel, big.NewInt(cell.Final.Strokes()))
		}
		valid = true
	case OP_DUP:
		value := bank.Pop(sel)
		bank.PushFront(sel, value)
		bank.PushFront(sel, value)
		valid = true
	case OP_SWAP:
		a := bank.Pop(sel)
		b := bank.Pop(sel)
		bank.PushFront(sel, a)
		bank.PushFront(sel, b)
		valid = true
	case OP_SELECT:
		eng.Selected = int(cell.Final)
		valid = true
	case OP_MOVE:
		bank.Push(int(cell.Final), bank.Pop(sel))
		valid = true
	case OP_CMP:
		a := bank.Pop(sel)
		b := bank.Pop(sel)
		if b.Cmp(a) >= 0 {
			bank.Push(sel, big.NewInt(1))
		} else {
			bank.Push(sel, big.NewInt(0))
		}
		valid = true
	case OP_COND:
		valid = bank.Pop(sel).Sign() != 0
	case OP_UNDEFINED:
		// Always bounces.
	}

	return
}

// toRune converts a value to a printable character, or hangul.FILLER.
func toRune(value *big.Int) rune {
	if !value.IsInt64() {
		return hangul.FILLER
	}

	n := value.Int64()
	if n < 0 || n > unicode.MaxRune || !utf8.ValidRune(rune(n)) {
		return hangul.FILLER
	}

	return rune(n)
}

// parseNumber reads an optionally signed decimal prefix, or zero.
func parseNumber(line string) (value *big.Int) {
	value = new(big.Int)

	text := strings.TrimSpace(line)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return
	}

	value.SetString(text[:end], 10)
	return
}
