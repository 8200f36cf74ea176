package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette for listings and errors.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// NameStyle is for prefix and application names.
	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	// MutedStyle is for paths and descriptions.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// OkStyle marks valid entries.
	OkStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	// WarningStyle is for tags such as the sandbox mode.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ErrorStyle is for invalid entries and the final error line.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)
