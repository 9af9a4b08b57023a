// Package theme centralizes Lip Gloss styles for the bracket UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across the views.
type Theme struct {
	Bracket BracketTheme
	Detail  DetailTheme
	Chat    ChatTheme
	Footer  FooterTheme
	Tabs    TabTheme
}

// BracketTheme styles the bracket canvas.
type BracketTheme struct {
	RegionTitle lipgloss.Style
	RoundLabel  lipgloss.Style
	Seed        lipgloss.Style
	Team        lipgloss.Style
	Eliminated  lipgloss.Style
	Winner      lipgloss.Style
	LiveScore   lipgloss.Style
	FinalScore  lipgloss.Style
	Placeholder lipgloss.Style
	Connector   lipgloss.Style
	Selected    lipgloss.Style
	PickBadge   lipgloss.Style
}

// DetailTheme styles the game drill-down.
type DetailTheme struct {
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Play      lipgloss.Style
	TableHead lipgloss.Style
	TableRow  lipgloss.Style
	Totals    lipgloss.Style
}

// ChatTheme styles the watch-party pane.
type ChatTheme struct {
	Handle lipgloss.Style
	Body   lipgloss.Style
	System lipgloss.Style
	Input  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Live   lipgloss.Style
}

// TabTheme styles the view switcher.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Bracket: BracketTheme{
			RegionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
			RoundLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Seed:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Team:        lipgloss.NewStyle(),
			Eliminated:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Winner:      lipgloss.NewStyle().Bold(true),
			LiveScore:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			FinalScore:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			Connector:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Selected:    lipgloss.NewStyle().Reverse(true),
			PickBadge:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		},
		Detail: DetailTheme{
			Header:    lipgloss.NewStyle().Bold(true),
			Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			Play:      lipgloss.NewStyle(),
			TableHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
			TableRow:  lipgloss.NewStyle(),
			Totals:    lipgloss.NewStyle().Bold(true),
		},
		Chat: ChatTheme{
			Handle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Body:   lipgloss.NewStyle(),
			System: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Live:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
		Tabs: TabTheme{
			Active:   lipgloss.NewStyle().Bold(true).Underline(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// TeamStyle builds a foreground style from a team's hex color, lifting
// dark colors toward readability on dark terminals. Empty or invalid
// colors fall back to the plain team style.
func (t Theme) TeamStyle(hex string) lipgloss.Style {
	if hex == "" {
		return t.Bracket.Team
	}
	if len(hex) == 6 {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return t.Bracket.Team
	}
	if _, _, l := c.Hcl(); l < 0.35 {
		c = c.BlendHcl(colorful.Color{R: 1, G: 1, B: 1}, 0.4)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
