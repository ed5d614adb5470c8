package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used on the console.

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")) // Dim gray for raw benchmark output

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // Cyan/Teal
			Underline(true)
)

// Success styles a final success message.
func Success(s string) string { return successStyle.Render(s) }

// Error styles a terminal failure message.
func Error(s string) string { return errorStyle.Render(s) }

// Info styles a progress message.
func Info(s string) string { return infoStyle.Render(s) }

// Echo styles one raw line of benchmark output.
func Echo(s string) string { return echoStyle.Render(s) }

// Path styles a filesystem path.
func Path(s string) string { return pathStyle.Render(s) }
