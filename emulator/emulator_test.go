package emulator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aheui/engine"
	"github.com/ezrec/aheui/io"
	"github.com/ezrec/aheui/logs"
)

// Prints 9 down to 1 then halts.
var countdown = strings.Join([]string{
	"밟빠망받박타타빠추",
	"ㅇ오ㅇㅇㅇㅇㅇㅇ어",
	"ㅇㅇㅇㅇㅇㅇㅇㅇ희",
}, "\n")

var helloWorld = strings.Join([]string{
	"밤밣따빠밣밟따뿌",
	"빠맣파빨받밤뚜뭏",
	"돋밬탕빠맣붏두붇",
	"볻뫃박발뚷투뭏붖",
	"뫃도뫃희멓뭏뭏붘",
	"뫃봌토범더벌뿌뚜",
	"뽑뽀멓멓더벓뻐뚠",
	"뽀덩벐멓뻐덕더벅",
}, "\n")

type stepWatch int

func (sw stepWatch) Hit(eng *engine.Engine) (bool, error) {
	return eng.Steps >= int(sw), nil
}

type failWatch struct{}

var errWatch = errors.New("watch failed")

func (failWatch) Hit(eng *engine.Engine) (bool, error) {
	return false, errWatch
}

func TestNewEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("희", nil)
	assert.NoError(err)
	assert.NotNil(emu.Engine)
	assert.False(emu.Verbose)

	emu, err = NewEmulator("", nil)
	assert.ErrorIs(err, engine.ErrEmptyProgram)
	assert.Nil(emu)
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	emu, err := NewEmulator("박망희", &io.Terminal{Output: out})
	assert.NoError(err)

	for n := range 2 {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done, n)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)

	assert.Equal("2", out.String())
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("받밪따망희", nil)
	assert.NoError(err)

	exit, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.EXIT_SUCCESS, exit.Kind)
	assert.Equal("9", emu.Output())
}

func TestEmulator_Countdown(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(countdown, nil)
	assert.NoError(err)
	emu.MaxSteps = 10000

	exit, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.EXIT_SUCCESS, exit.Kind)
	assert.Equal("987654321", emu.Output())
}

func TestEmulator_HelloWorld(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	emu, err := NewEmulator(helloWorld, &io.Terminal{Output: out})
	assert.NoError(err)
	emu.MaxSteps = 10000

	exit, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.EXIT_SUCCESS, exit.Kind)
	assert.Equal("Hello, world!\n", out.String())
	assert.Equal(out.String(), emu.Output())
}

func TestEmulator_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("바발라", nil)
	assert.NoError(err)

	exit, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.EXIT_DIVIDE_BY_ZERO, exit.Kind)
	assert.Equal(engine.Point{X: 2, Y: 0}, exit.At)
}

func TestEmulator_StepLimit(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("아어", nil)
	assert.NoError(err)
	emu.MaxSteps = 100

	_, err = emu.Run(context.Background())
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(100, emu.Steps)

	var rt *ErrRuntime
	assert.ErrorAs(err, &rt)
	assert.Equal(100, rt.Step)
}

func TestEmulator_Watch(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("아어", nil)
	assert.NoError(err)
	emu.Watch = stepWatch(7)

	_, err = emu.Run(context.Background())
	assert.ErrorIs(err, ErrBreakpoint)
	assert.Equal(7, emu.Steps)

	emu.Watch = failWatch{}
	_, err = emu.Tick()
	assert.ErrorIs(err, errWatch)
}

func TestEmulator_Context(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("아어", nil)
	assert.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Steps)
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("박망희", nil)
	assert.NoError(err)

	_, err = emu.Run(context.Background())
	assert.NoError(err)
	assert.True(emu.Halted())

	assert.NoError(emu.Reset())
	assert.False(emu.Halted())
	assert.Equal(0, emu.Steps)
	assert.Equal("", emu.Output())
}

func TestEmulator_Hook(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator("박망희", nil)
	assert.NoError(err)

	var steps []int
	emu.Hook = func(eng *engine.Engine) {
		steps = append(steps, eng.Steps)
	}

	ex, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(engine.EXIT_SUCCESS, ex.Kind)
	assert.Equal([]int{1, 2, 3}, steps)
}

func TestEmulator_Logging(t *testing.T) {
	assert := assert.New(t)

	terminal := &bytes.Buffer{}
	trace := &bytes.Buffer{}

	emu, err := NewEmulator("박망희", nil)
	assert.NoError(err)
	emu.Verbose = true
	emu.Logger = logs.New(terminal, logs.Options{Trace: trace})

	_, err = emu.Run(context.Background())
	assert.NoError(err)

	assert.Contains(terminal.String(), "msg=exit")
	assert.NotContains(terminal.String(), "msg=step")
	assert.Contains(trace.String(), `"msg":"step"`)
	assert.Contains(trace.String(), `"op":"print"`)
	assert.Contains(trace.String(), `"msg":"exit"`)
}

func TestErrRuntime(t *testing.T) {
	assert := assert.New(t)

	err := &ErrRuntime{Step: 3, At: engine.Point{X: 1, Y: 2}, Err: engine.ErrInput}
	assert.ErrorIs(err, engine.ErrInput)
	assert.Contains(err.Error(), "(1, 2)")
}
