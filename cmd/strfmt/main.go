// Command strfmt renders templates with named, Python-style placeholders.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjaus/strfmt/internal/logging"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorText(os.Stderr, err))
		os.Exit(1)
	}
}

// errorText renders err for f, in red when f is a terminal.
func errorText(f *os.File, err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if !logging.IsTerminal(f) {
		return msg
	}
	style := lipgloss.NewRenderer(f).NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)
	return style.Render(msg)
}
