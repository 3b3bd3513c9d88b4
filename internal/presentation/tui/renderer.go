package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/typecheck/pkg/registry"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// ShapesMarkdown formats registered shapes as a markdown table.
func ShapesMarkdown(entries []registry.Entry) string {
	var b strings.Builder
	b.WriteString("| Shape | Description | Type |\n")
	b.WriteString("|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", e.Name, escapeCell(e.Description), escapeCell(e.Checker.String()))
	}
	return b.String()
}

// ShapesPlain formats registered shapes one per line, tab separated.
func ShapesPlain(entries []registry.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\t%s\n", e.Name, e.Checker.String())
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
