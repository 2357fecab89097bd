package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites fg on top of a width x height canvas at cell (x, y).
// Parts of fg outside the canvas are clipped, including negative offsets
// left by windows dragged past the screen edge.
func Overlay(base, fg string, x, y, width, height int) string {
	baseLines := Canvas(base, width, height)
	fgLines := splitLines(fg)
	fgWidth := maxLineWidth(fgLines)

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		line = padRight(line, fgWidth)

		// Clip the overlay to the visible columns
		start, end := x, x+fgWidth
		if start < 0 {
			line = ansi.TruncateLeft(line, -start, "")
			start = 0
		}
		if end > width {
			line = ansi.Truncate(line, ansi.StringWidth(line)-(end-width), "")
			end = width
		}
		if start >= end {
			continue
		}

		target := baseLines[row]
		left := ansi.Truncate(target, start, "")
		right := ansi.TruncateLeft(target, end, "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// Canvas splits s into exactly height lines each exactly width cells wide
func Canvas(s string, width, height int) []string {
	lines := splitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fit(lines[i], width)
	}
	return lines
}

// Center returns the offset that centers size within total, never negative
func Center(total, size int) int {
	return max(0, (total-size)/2)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padRight(ansi.Truncate(s, width, ""), width)
}
