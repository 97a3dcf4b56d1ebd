package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Terminal is a Console over a line-oriented reader and a writer.
type Terminal struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Console = (*Terminal)(nil)

// Print writes text to the output. A nil output discards it.
func (tc *Terminal) Print(text string) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = io.WriteString(tc.Output, text)
	return
}

// ReadLine reads up to the next newline. A number request strips the line
// ending; a character request keeps it, with CR/LF folded to LF.
func (tc *Terminal) ReadLine(request Request) (line string, err error) {
	if tc.Input == nil {
		err = ErrNoInput
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	line, err = tc.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	newline := strings.HasSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if newline && request == REQUEST_CHAR {
		line += "\n"
	}

	return
}
