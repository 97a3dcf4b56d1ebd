package debugger

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezrec/aheui/emulator"
)

// STEPPER_BATCH is the count of steps run between screen refreshes.
const STEPPER_BATCH = 64

type keyMap struct {
	Step  key.Binding
	Run   key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Step, km.Run, km.Reset, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

var _keys = keyMap{
	Step: key.NewBinding(
		key.WithKeys("n", " "),
		key.WithHelp("n", "step"),
	),
	Run: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "run/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "restart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// runMsg continues a free run.
type runMsg struct{}

func runCmd() tea.Msg {
	return runMsg{}
}

// Stepper is an interactive bubbletea model stepping an emulator.
type Stepper struct {
	Emulator *emulator.Emulator
	Renderer *Renderer
	Batch    int // Steps per refresh while running.

	help    help.Model
	running bool
	status  string
}

var _ tea.Model = (*Stepper)(nil)

// NewStepper creates a stepper for an emulator.
func NewStepper(emu *emulator.Emulator, rd *Renderer) *Stepper {
	return &Stepper{
		Emulator: emu,
		Renderer: rd,
		Batch:    STEPPER_BATCH,
		help:     help.New(),
	}
}

// Running returns true while a free run is in progress.
func (st *Stepper) Running() bool {
	return st.running
}

// Status returns the last exit, breakpoint or error message.
func (st *Stepper) Status() string {
	return st.status
}

func (st *Stepper) Init() tea.Cmd {
	return nil
}

// tick advances once, and returns false when the run must stop.
func (st *Stepper) tick() bool {
	done, err := st.Emulator.Tick()
	if err != nil {
		st.status = err.Error()
		return false
	}
	if done {
		if ex, ok := st.Emulator.Exit(); ok {
			st.status = ex.String()
		}
		return false
	}
	return true
}

func (st *Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, _keys.Quit):
			return st, tea.Quit
		case key.Matches(msg, _keys.Step):
			st.running = false
			st.tick()
		case key.Matches(msg, _keys.Run):
			st.running = !st.running
			if st.running {
				return st, runCmd
			}
		case key.Matches(msg, _keys.Reset):
			st.running = false
			st.status = ""
			err := st.Emulator.Reset()
			if err != nil {
				st.status = err.Error()
			}
		}
	case runMsg:
		if !st.running {
			return st, nil
		}
		for range max(st.Batch, 1) {
			if !st.tick() {
				st.running = false
				return st, nil
			}
		}
		return st, runCmd
	}

	return st, nil
}

func (st *Stepper) View() string {
	var sb strings.Builder

	sb.WriteString(st.Renderer.Render(st.Emulator.Engine))
	sb.WriteString("\noutput: ")
	sb.WriteString(st.Emulator.Output())
	sb.WriteString("\n")
	if len(st.status) > 0 {
		sb.WriteString(st.status)
		sb.WriteString("\n")
	}
	sb.WriteString(st.help.View(_keys))
	sb.WriteString("\n")

	return sb.String()
}
