// Package io provides the console boundary of the interpreter: printing
// values and characters, and requesting lines of input.
package io

// Request is the kind of value a read instruction is waiting for.
type Request int

//go:generate go tool stringer -linecomment -type=Request
const (
	REQUEST_NUMBER = Request(0) // number
	REQUEST_CHAR   = Request(1) // character
)

// Console is the interpreter's view of the terminal.
type Console interface {
	// Print emits text produced by a print instruction.
	Print(text string) error
	// ReadLine blocks for one line of input. A character request keeps
	// the LF terminator, a number request drops it. End of input is an
	// empty line.
	ReadLine(request Request) (line string, err error)
}
