// Package debugger renders engine state for humans, evaluates breakpoint
// conditions, and drives an interactive single-step session.
package debugger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ezrec/aheui/engine"
	"github.com/ezrec/aheui/storage"
)

// Renderer draws the grid and storage of an engine.
type Renderer struct {
	Cursor lipgloss.Style // Cell to execute next.
	Prev   lipgloss.Style // Cell executed last.
}

// NewRenderer creates a renderer whose colors suit the terminal behind w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)

	return &Renderer{
		Cursor: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")),
		Prev: r.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")),
	}
}

// Header returns the step, cursor and direction summary line.
func (rd *Renderer) Header(eng *engine.Engine) string {
	return fmt.Sprintf("step: %d, cursor: (%d, %d), dir: (%d, %d)",
		eng.Steps, eng.Cursor.X, eng.Cursor.Y, eng.Dir.X, eng.Dir.Y)
}

// Grid returns the program text with the cursor and previous cell highlighted.
func (rd *Renderer) Grid(eng *engine.Engine) string {
	var sb strings.Builder

	for y, row := range eng.Grid.Cell {
		for x, cell := range row {
			pt := engine.Point{X: x, Y: y}
			text := string(cell.Rune)
			switch pt {
			case eng.Cursor:
				sb.WriteString(rd.Cursor.Render(text))
			case eng.Prev:
				sb.WriteString(rd.Prev.Render(text))
			default:
				sb.WriteString(text)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Storage lists every non-empty slot, front-most value first.
func (rd *Renderer) Storage(eng *engine.Engine) string {
	var sb strings.Builder

	for slot, s := range eng.Bank.Occupied() {
		fmt.Fprintf(&sb, "%c: %v\n", storage.Name(slot), s.Values())
	}

	return sb.String()
}

// Render returns the complete diagnostic dump.
func (rd *Renderer) Render(eng *engine.Engine) string {
	return rd.Header(eng) + "\n" + rd.Grid(eng) + rd.Storage(eng)
}
