package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// highlightColor matches the counter tooltip accent.
const highlightColor = lipgloss.Color("#4fc3f7")

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlightColor).
			Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(highlightColor)
)

// renderBox draws text in a bordered panel with the first line highlighted.
func renderBox(text string) string {
	lines := strings.Split(text, "\n")
	lines[0] = highlightStyle.Render(lines[0])
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func writePanel(w io.Writer, text string, box bool) error {
	if box {
		text = renderBox(text)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
