package fmte

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, name := range LevelNames() {
		l, err := ParseLevel(name)
		require.NoError(t, err, "level: %s", name)
		assert.Equal(t, name, l.String())
	}
	l, err := ParseLevel(" warning ")
	assert.NoError(t, err)
	assert.Equal(t, LevelWarning, l)

	_, err = ParseLevel("VERBOSE")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLevel(LevelWarning)
	defer func() {
		SetLevel(LevelError)
		SetLogOutput(os.Stderr)
	}()

	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Warnf("shown %d", 3)
	LogErrorf("shown %d", 4)
	Criticalf("shown %d", 5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, " - WARNING - shown 3\n")
	assert.Contains(t, out, " - ERROR - shown 4\n")
	assert.Contains(t, out, " - CRITICAL - shown 5\n")
}
