package tui

import (
	"github.com/charmbracelet/lipgloss"

	"campaign-tracker/internal/core/domain"
)

// palette holds the colour roles used by the terminal frontend.
var palette = struct {
	Text, Muted, Accent, Border lipgloss.Color
	Green, Yellow, Red, Gray    lipgloss.Color
	GreenBg, YellowBg, RedBg    lipgloss.Color
	GrayBg, Selected            lipgloss.Color
}{
	Text:     lipgloss.Color("#FFFCF0"),
	Muted:    lipgloss.Color("#878580"),
	Accent:   lipgloss.Color("#3AA99F"),
	Border:   lipgloss.Color("#575653"),
	Green:    lipgloss.Color("#879A39"),
	Yellow:   lipgloss.Color("#D0A215"),
	Red:      lipgloss.Color("#D14D41"),
	Gray:     lipgloss.Color("#878580"),
	GreenBg:  lipgloss.Color("#1E2B0E"),
	YellowBg: lipgloss.Color("#2E2407"),
	RedBg:    lipgloss.Color("#3A1512"),
	GrayBg:   lipgloss.Color("#282726"),
	Selected: lipgloss.Color("#343331"),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(palette.Text)
	subtitleStyle = lipgloss.NewStyle().Foreground(palette.Muted)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(palette.Muted)
	mutedStyle    = lipgloss.NewStyle().Foreground(palette.Muted)
	accentStyle   = lipgloss.NewStyle().Foreground(palette.Accent)
	bannerStyle   = lipgloss.NewStyle().Foreground(palette.Red).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(palette.Selected)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(palette.Border).Padding(0, 1)
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(palette.Red).Padding(1, 2)
)

// statusStyle maps a status category to a badge style, mirroring the web
// frontend's colours. Unknown categories use the neutral style.
func statusStyle(c domain.StatusCategory) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch c {
	case domain.CategoryGood:
		return base.Foreground(palette.Green).Background(palette.GreenBg)
	case domain.CategoryCaution:
		return base.Foreground(palette.Yellow).Background(palette.YellowBg)
	case domain.CategoryDanger:
		return base.Foreground(palette.Red).Background(palette.RedBg)
	default:
		return base.Foreground(palette.Gray).Background(palette.GrayBg)
	}
}
