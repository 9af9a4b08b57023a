// Package bottombar renders the footer: contextual key help, fetch
// status, live-game indicator, and a dismissible error line.
package bottombar

import (
	"strconv"
	"strings"

	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

// Mode selects the footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeChat
	ModeWizard
)

// Model tracks footer rendering state.
type Model struct {
	theme      theme.Theme
	mode       Mode
	helpLine   string
	statusLine string
	errLine    string
	spinner    string
	liveCount  int
}

// New returns a footer model with the default help line.
func New(th theme.Theme) Model {
	return Model{
		theme:    th,
		helpLine: "Keys: h/l=round  j/k=move  r=region  Enter=details  ?=help  q=quit",
	}
}

// SetMode updates the footer layout mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
}

func (m *Model) Mode() Mode { return m.mode }

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the transient status message.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// SetError sets the dismissible error line. Empty clears it.
func (m *Model) SetError(err string) {
	m.errLine = err
}

func (m Model) HasError() bool { return m.errLine != "" }

// SetSpinner sets the in-flight fetch indicator frame. Empty hides it.
func (m *Model) SetSpinner(frame string) {
	m.spinner = frame
}

// SetLiveCount sets the number of in-progress games.
func (m *Model) SetLiveCount(n int) {
	m.liveCount = n
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	if m.errLine != "" {
		return 2
	}
	return 1
}

// View renders the footer and reports lines consumed.
func (m Model) View() (string, int) {
	var segments []string
	if m.spinner != "" {
		segments = append(segments, m.spinner)
	}
	if m.liveCount > 0 {
		label := "● LIVE"
		if m.liveCount > 1 {
			label = "● LIVE ×" + strconv.Itoa(m.liveCount)
		}
		segments = append(segments, m.theme.Footer.Live.Render(label))
	}
	if m.statusLine != "" {
		segments = append(segments, m.theme.Footer.Status.Render(m.statusLine))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Footer.Help.Render(m.helpLine))
	}

	line := " "
	if len(segments) > 0 {
		line = strings.Join(segments, "  ")
	}
	if m.errLine != "" {
		err := m.theme.Footer.Error.Render("✗ " + m.errLine + "  (e to dismiss)")
		return err + "\n" + line, 2
	}
	return line, 1
}
