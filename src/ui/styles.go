package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	TitleBar     lipgloss.Style
	Title        lipgloss.Style
	TitleButton  lipgloss.Style
	CloseButton  lipgloss.Style
	TrafficRed   lipgloss.Style
	TrafficAmber lipgloss.Style
	TrafficGreen lipgloss.Style
	Dropdown     lipgloss.Style
	MenuItem     lipgloss.Style

	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogInput  lipgloss.Style
	OptionRow    lipgloss.Style
	OptionActive lipgloss.Style
	StepCounter  lipgloss.Style
	DotActive    lipgloss.Style
	DotInactive  lipgloss.Style

	Textarea lipgloss.Style
	Help     lipgloss.Style
	Footer   lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Thinking lipgloss.Style
	Subtle   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		TitleBar: lipgloss.NewStyle().
			Background(lipgloss.Color("#1A1A2E")).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")).
			Bold(true),

		TitleButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Padding(0, 1),

		CloseButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Padding(0, 1),

		TrafficRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F57")),

		TrafficAmber: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FEBC2E")),

		TrafficGreen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#28C840")),

		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD8CFF")).
			Padding(0, 1),

		MenuItem: lipgloss.NewStyle().
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD8CFF")).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")).
			Bold(true),

		DialogInput: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),

		OptionRow: lipgloss.NewStyle().
			Padding(0, 1),

		OptionActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E6B8")).
			Bold(true).
			Padding(0, 1),

		StepCounter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		DotActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")),

		DotInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")),

		Textarea: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#AD8CFF")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AD8CFF")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")).
			Bold(true),

		Thinking: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),
	}
}
