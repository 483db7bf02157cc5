package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color/style codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	cyan   = "\033[36m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	blue   = "\033[34m"
)

// Printer writes status lines. Styling is only applied when the
// destination is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: isTTY(w)}
}

// isTTY returns true if w is a character device.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// s wraps text with ANSI codes only when color is enabled.
func (p *Printer) s(codes, text string) string {
	if !p.color {
		return text
	}
	return codes + text + reset
}

// Banner prints the startup banner.
//
//	 stay-awake v0.1.0
func (p *Printer) Banner(version string) {
	fmt.Fprintf(p.w, "\n  %s %s\n", p.s(bold+cyan, "stay-awake"), p.s(dim, "v"+version))
}

// Transition prints a before/after pair:
//
//	 From ==> Continuous (0x80000000)
//	   To ==> Continuous|SystemRequired (0x80000001)
func (p *Printer) Transition(from, to string) {
	fmt.Fprintf(p.w, "    %s %s\n", p.s(red, "From ==>"), from)
	fmt.Fprintf(p.w, "      %s %s\n", p.s(blue, "To ==>"), to)
}

// Info prints an info line:  ● message
func (p *Printer) Info(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(p.w, "  %s %s\n", p.s(cyan, "●"), msg)
}

// Success prints a success line:  ✔ message
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(p.w, "  %s %s\n", p.s(green, "✔"), msg)
}

// Warn prints a warning line:  ▲ message
func (p *Printer) Warn(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(p.w, "  %s %s\n", p.s(yellow, "▲"), msg)
}

// Error prints an error line:  ✖ message
func (p *Printer) Error(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(p.w, "  %s %s\n", p.s(red, "✖"), msg)
}

// Prompt prints a message without a trailing newline.
func (p *Printer) Prompt(msg string) {
	fmt.Fprintf(p.w, "  %s %s ", p.s(yellow, "?"), msg)
}

// Newline ends a pending Prompt line.
func (p *Printer) Newline() {
	fmt.Fprintln(p.w)
}

// Separator prints a dim horizontal line.
func (p *Printer) Separator() {
	fmt.Fprintf(p.w, "  %s\n", p.s(dim, strings.Repeat("─", 48)))
}
