package main

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primary   = lipgloss.Color("#06B6D4") // cyan
	success   = lipgloss.Color("#10B981") // green
	warning   = lipgloss.Color("#F59E0B") // amber
	danger    = lipgloss.Color("#EF4444") // red
	muted     = lipgloss.Color("#6B7280") // gray
	textColor = lipgloss.Color("#E5E7EB") // light gray

	// Reusable styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			PaddingLeft(1).
			PaddingRight(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			PaddingLeft(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(warning).
			PaddingLeft(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(success).
			PaddingLeft(1)

	stepActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	stepLabelStyle = lipgloss.NewStyle().
			Foreground(muted)

	selectorStyle = lipgloss.NewStyle().
			Foreground(primary)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#1F2937")).
			PaddingLeft(1).
			PaddingRight(1)
)
