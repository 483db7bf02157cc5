package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_NoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Info("mode: %s", "system")
	p.Transition("Continuous (0x80000000)", "Continuous|SystemRequired (0x80000001)")

	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "● mode: system\n")
	assert.Contains(t, out, "From ==> Continuous (0x80000000)\n")
	assert.Contains(t, out, "To ==> Continuous|SystemRequired (0x80000001)\n")
}

func TestPrinter_ColorWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{w: &buf, color: true}

	p.Error("boom")

	assert.Equal(t, "  "+red+"✖"+reset+" boom\n", buf.String())
}

func TestPrinter_Prompt(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Prompt("Press Enter")

	assert.Equal(t, "  ? Press Enter ", buf.String())
}
