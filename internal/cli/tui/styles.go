package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorSuccess   = lipgloss.Color("82")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Histogram bars
	keptBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	trimmedBarStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	outlierBarStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Gap between robust and plain estimates
	gapStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

type binKind int

const (
	binKept binKind = iota
	binTrimmed
	binOutlier
)

// barStyle returns the histogram style for a bin
func barStyle(kind binKind) lipgloss.Style {
	switch kind {
	case binOutlier:
		return outlierBarStyle
	case binTrimmed:
		return trimmedBarStyle
	default:
		return keptBarStyle
	}
}
