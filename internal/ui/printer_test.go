package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "[░░░░░░░░░░] 0/0"},
		{1, 2, 10, "[█████░░░░░] 1/2"},
		{3, 3, 5, "[█████] 3/3"},
		{1, 4, 2, "[█░░░░] 1/4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.width))
	}
}

func TestPrinter_MonoIsPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, "mono", "never")

	p.OK("added")
	p.Fail("index out of range")
	p.Hint("run `ls`")
	p.Panel([]string{"Reminders", "one"})

	assert.True(t, strings.HasPrefix(out.String(), "ok added\n"), "got %q", out.String())
	assert.Contains(t, errOut.String(), "error: index out of range\n")
	assert.Contains(t, errOut.String(), "Hint: run `ls`\n")
	assert.NotContains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "+")
	assert.Contains(t, out.String(), "| Reminders")
}

func TestPrinter_NeverColorStripsEscapes(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, "neon", "never")

	p.OK("toggled")

	assert.False(t, strings.Contains(out.String(), "\x1b["), "got %q", out.String())
	assert.Contains(t, out.String(), "✔ toggled")
}

func TestNewTheme_UnknownFallsBackToClassic(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, &bytes.Buffer{}, "pastel", "never")
	assert.Equal(t, "☐", p.Theme().BoxUnchecked)
	assert.Equal(t, "☑", p.Theme().BoxChecked)
}
