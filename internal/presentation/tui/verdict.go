package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// VerdictPrinter writes one line per checked document.
type VerdictPrinter struct {
	out *termenv.Output
}

// NewVerdictPrinter writes to w, coloring output when w is a terminal.
func NewVerdictPrinter(w io.Writer) *VerdictPrinter {
	return &VerdictPrinter{out: termenv.NewOutput(w)}
}

// Pass reports a conforming document.
func (p *VerdictPrinter) Pass(source, shape string) {
	tag := p.out.String("PASS").Foreground(p.out.Color("#22c55e")).Bold()
	fmt.Fprintf(p.out, "%s %s (%s)\n", tag, source, shape)
}

// Fail reports a document that does not conform.
func (p *VerdictPrinter) Fail(source, shape string) {
	tag := p.out.String("FAIL").Foreground(p.out.Color("#ef4444")).Bold()
	fmt.Fprintf(p.out, "%s %s (%s)\n", tag, source, shape)
}

// Error reports a document that could not be read or decoded.
func (p *VerdictPrinter) Error(source string, err error) {
	tag := p.out.String("ERR ").Foreground(p.out.Color("#f59e0b")).Bold()
	fmt.Fprintf(p.out, "%s %s: %v\n", tag, source, err)
}
