package debugger

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aheui/emulator"
	"github.com/ezrec/aheui/engine"
	"github.com/ezrec/aheui/io"
)

func newEngine(t *testing.T, source string) *engine.Engine {
	eng, err := engine.NewEngine(source, io.Headless{})
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func plainRenderer() *Renderer {
	return NewRenderer(&bytes.Buffer{})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRenderer_Render(t *testing.T) {
	assert := assert.New(t)

	eng := newEngine(t, "박받\n희")
	assert.NoError(eng.Step())
	assert.NoError(eng.Step())
	eng.Bank.Push(21, big.NewInt(7))

	text := plainRenderer().Render(eng)
	lines := strings.Split(text, "\n")

	assert.Equal("step: 2, cursor: (0, 0), dir: (1, 0)", lines[0])
	assert.Equal("박받", lines[1])
	assert.Equal("희ㅇ", lines[2])
	assert.Equal("아: [3 2]", lines[3])
	assert.Equal("앙: [7]", lines[4])
}

func TestRenderer_Highlight(t *testing.T) {
	assert := assert.New(t)

	eng := newEngine(t, "박받")
	assert.NoError(eng.Step())

	rd := plainRenderer()
	rd.Cursor = rd.Cursor.Transform(func(s string) string { return "[" + s + "]" })
	rd.Prev = rd.Prev.Transform(func(s string) string { return "<" + s + ">" })

	assert.Equal("<박>[받]\n", rd.Grid(eng))
}

func TestBreakpoint(t *testing.T) {
	assert := assert.New(t)

	eng := newEngine(t, "박받망희")
	assert.NoError(eng.Step())
	assert.NoError(eng.Step())

	table := [](struct {
		expr string
		hit  bool
	}){
		{"step == 2", true},
		{"step > 2", false},
		{"x == 2 and y == 0", true},
		{"dx == 1 and dy == 0", true},
		{"prev_x == 1", true},
		{"depth == 2 and selected == 0", true},
		{"slot(0) == [3, 2]", true},
		{"len(slot(21)) == 0", true},
		{"cell == '망'", true},
		{"output == ''", true},
		{"depth", true},
		{"slot(1)", false},
	}

	for _, entry := range table {
		bp, err := NewBreakpoint(entry.expr)
		assert.NoError(err, entry.expr)
		hit, err := bp.Hit(eng)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.hit, hit, entry.expr)
	}
}

func TestBreakpoint_Errors(t *testing.T) {
	assert := assert.New(t)

	bp, err := NewBreakpoint("step ==")
	assert.ErrorIs(err, ErrBreakpointSyntax)
	assert.Nil(bp)

	eng := newEngine(t, "희")

	bp, err = NewBreakpoint("nosuch == 1")
	assert.NoError(err)
	_, err = bp.Hit(eng)
	assert.Error(err)

	bp, err = NewBreakpoint("slot(28)")
	assert.NoError(err)
	_, err = bp.Hit(eng)
	assert.Error(err)
}

func TestBreakpoint_Emulator(t *testing.T) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator("박받다망희", nil)
	assert.NoError(err)

	emu.Watch, err = NewBreakpoint("depth == 1 and step > 1")
	assert.NoError(err)

	_, err = emu.Run(context.Background())
	assert.ErrorIs(err, emulator.ErrBreakpoint)
	assert.Equal(3, emu.Steps)
}

func TestStepper(t *testing.T) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator("박망희", nil)
	assert.NoError(err)

	st := NewStepper(emu, plainRenderer())
	assert.Nil(st.Init())

	_, cmd := st.Update(keyRune('n'))
	assert.Nil(cmd)
	assert.Equal(1, emu.Steps)

	_, cmd = st.Update(keyRune('n'))
	assert.Nil(cmd)
	assert.Equal(2, emu.Steps)
	assert.Equal("2", emu.Output())

	view := st.View()
	assert.Contains(view, "step: 2")
	assert.Contains(view, "output: 2")

	st.Update(keyRune('n'))
	assert.True(emu.Halted())
	assert.Equal("success(0)", st.Status())
	assert.Contains(st.View(), "success(0)")

	// Stepping a halted program is ignored.
	st.Update(keyRune('n'))
	assert.Equal(3, emu.Steps)

	st.Update(keyRune('0'))
	assert.False(emu.Halted())
	assert.Equal(0, emu.Steps)
	assert.Equal("", st.Status())

	_, cmd = st.Update(keyRune('q'))
	assert.NotNil(cmd)
	assert.Equal(tea.Quit(), cmd())
}

func TestStepper_Run(t *testing.T) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator("받밪따망희", nil)
	assert.NoError(err)

	st := NewStepper(emu, plainRenderer())
	st.Batch = 2

	_, cmd := st.Update(keyRune('r'))
	assert.True(st.Running())
	assert.NotNil(cmd)

	for cmd != nil {
		_, cmd = st.Update(cmd())
	}

	assert.False(st.Running())
	assert.True(emu.Halted())
	assert.Equal("9", emu.Output())
}

func TestStepper_Pause(t *testing.T) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator("아어", nil)
	assert.NoError(err)
	emu.Watch, err = NewBreakpoint("step == 5")
	assert.NoError(err)

	st := NewStepper(emu, plainRenderer())
	st.Batch = 100

	_, cmd := st.Update(keyRune('r'))
	_, cmd = st.Update(cmd())
	assert.Nil(cmd)
	assert.False(st.Running())
	assert.Equal(5, emu.Steps)
	assert.Contains(st.Status(), "breakpoint")

	_, cmd = st.Update(keyRune('r'))
	assert.True(st.Running())
	_, cmd = st.Update(keyRune('r'))
	assert.False(st.Running())
	assert.Nil(cmd)

	_, cmd = st.Update(runMsg{})
	assert.Nil(cmd)
}
