package slider

import "github.com/charmbracelet/lipgloss"

var (
	Ink      = lipgloss.Color("#1F2937")
	Muted    = lipgloss.Color("#6B7280")
	Accent   = lipgloss.Color("#2563EB")
	Gold     = lipgloss.Color("#F59E0B")
	Faint    = lipgloss.Color("#D1D5DB")
	Danger   = lipgloss.Color("#DC2626")
	OnAccent = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(Muted)

	ItemStyle = lipgloss.NewStyle().
			Foreground(Ink)

	ActiveItemStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	PriceStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Bold(true)

	FilledStarStyle = lipgloss.NewStyle().Foreground(Gold)
	HalfStarStyle   = lipgloss.NewStyle().Foreground(Gold)
	EmptyStarStyle  = lipgloss.NewStyle().Foreground(Faint)

	CountStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CTAStyle = lipgloss.NewStyle().
			Foreground(Accent)

	FocusedCTAStyle = lipgloss.NewStyle().
			Foreground(OnAccent).
			Background(Accent).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)
