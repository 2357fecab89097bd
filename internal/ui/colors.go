package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the application
type Colors struct {
	Accent          lipgloss.Color
	AccentAlt       lipgloss.Color
	Desktop         lipgloss.Color
	Surface         lipgloss.Color
	Text            lipgloss.Color
	Muted           lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Bar             lipgloss.Color
	BarText         lipgloss.Color
	Error           lipgloss.Color
}

// DefaultColors is the parrot-green palette
var DefaultColors = Colors{
	Accent:          lipgloss.Color("#06d6a0"),
	AccentAlt:       lipgloss.Color("#118ab2"),
	Desktop:         lipgloss.Color("#0b1416"),
	Surface:         lipgloss.Color("#101c1f"),
	Text:            lipgloss.Color("#d8f3ea"),
	Muted:           lipgloss.Color("#5c7a73"),
	BorderFocused:   lipgloss.Color("#06d6a0"),
	BorderUnfocused: lipgloss.Color("#2f4a45"),
	Bar:             lipgloss.Color("#08201b"),
	BarText:         lipgloss.Color("#bdeee0"),
	Error:           lipgloss.Color("#ef476f"),
}
