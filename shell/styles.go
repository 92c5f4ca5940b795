package shell

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the shell.
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Query   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
	Dim     lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default shell styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),

		Query: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),

		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1),

		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0),
	}
}
