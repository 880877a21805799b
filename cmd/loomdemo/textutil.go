package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// wrapText breaks text into lines no wider than width, breaking on spaces.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// truncateText shortens text to width cells, marking the cut with an
// ellipsis. text may already carry ANSI styling (e.g. a rendered lipgloss
// string); reflow's truncate walks escape sequences instead of raw bytes,
// so a styled run is never cut mid-sequence.
func truncateText(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	return truncate.StringWithTail(text, uint(width), "...")
}

// padRight pads or truncates text to exactly width cells, measuring and
// padding by on-screen width rather than byte length so already-styled
// (ANSI-laden) text lines up the same as plain text.
func padRight(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return truncateText(text, width)
	}
	return padding.String(text, uint(width))
}

// progressBar renders a filled/empty block bar of the given width for
// current/total, e.g. "████████░░░░ 66.7%".
func progressBar(current, total, width int) (filled string, empty string, label string) {
	if total <= 0 || width <= 0 {
		return "", strings.Repeat("░", width), "n/a"
	}
	fraction := float64(current) / float64(total)
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	filledCells := int(fraction * float64(width))
	return strings.Repeat("█", filledCells), strings.Repeat("░", width-filledCells), fmt.Sprintf("%.1f%%", fraction*100)
}
