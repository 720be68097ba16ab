package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	ErrorLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	LocationStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	CaretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
