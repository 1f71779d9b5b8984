// Package tui provides the interactive terminal view over the task store.
package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors (light/dark terminal detection).
var (
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0070F3", Dark: "#79C0FF"}
	ColorDone    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorOverdue = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF6B6B"}
	ColorHigh    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Component styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(ColorOverdue).
			Bold(true)

	HighStyle = lipgloss.NewStyle().
			Foreground(ColorHigh)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
