package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, name string, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	CLI.File = writeFile(t, "prog.aheui", "방망희")
	CLI.Input = writeFile(t, "input.txt", "41\n")
	CLI.Break = ""

	stepper, closer, err := load()
	assert.NoError(err)
	assert.NotNil(closer)

	for range 3 {
		_, err = stepper.Emulator.Tick()
		assert.NoError(err)
	}
	assert.Equal("41", stepper.Emulator.Output())

	closer()
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	CLI.File = writeFile(t, "prog.aheui", "방망희")
	CLI.Input = writeFile(t, "input.txt", "41\n")
	CLI.Break = "depth =="

	stepper, closer, err := load()
	assert.Error(err)
	assert.Nil(stepper)
	assert.NotNil(closer)
	closer()

	CLI.File = writeFile(t, "empty.aheui", "")
	CLI.Break = ""
	_, closer, err = load()
	assert.Error(err)
	closer()
}
