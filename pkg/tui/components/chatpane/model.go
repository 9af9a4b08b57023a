// Package chatpane renders the watch-party chat: a scrollback of room
// messages above a text input for composing the next one.
package chatpane

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/holynakamoto/mmtui/pkg/chat"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

// Model renders the chat state and owns the compose input.
type Model struct {
	theme   theme.Theme
	input   textinput.Model
	state   *chat.State
	width   int
	height  int
	focused bool
}

func New(th theme.Theme, state *chat.State) *Model {
	input := textinput.New()
	input.Placeholder = "say something..."
	input.Prompt = "> "
	input.CharLimit = 480

	return &Model{
		theme:  th,
		input:  input,
		state:  state,
		width:  80,
		height: 24,
	}
}

// SetSize configures the pane dimensions.
func (m *Model) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	m.width = width
	m.height = height
	m.input.SetWidth(width - len(m.input.Prompt) - 1)
}

// Focus routes keystrokes into the compose input.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur releases the compose input.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

func (m *Model) Focused() bool { return m.focused }

// Update forwards input events to the compose field while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// Submit returns the trimmed compose text and clears the field. Empty
// submissions return "".
func (m *Model) Submit() string {
	body := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	return body
}

// View renders the scrollback and the input line, newest messages
// pinned to the bottom.
func (m *Model) View() string {
	scrollback := m.height - 2
	if scrollback < 1 {
		scrollback = 1
	}

	var rendered []string
	for _, msg := range m.state.Messages() {
		rendered = append(rendered, m.renderMessage(msg)...)
	}
	if len(rendered) > scrollback {
		rendered = rendered[len(rendered)-scrollback:]
	}
	for len(rendered) < scrollback {
		rendered = append([]string{""}, rendered...)
	}

	status := m.theme.Chat.System.Render("offline — reconnecting")
	if m.state.Connected {
		status = m.theme.Chat.System.Render("connected")
	}

	var b strings.Builder
	b.WriteString(strings.Join(rendered, "\n"))
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.theme.Chat.Input.Render(m.input.View()))
	return b.String()
}

// renderMessage wraps one message to the pane width. Continuation
// lines are indented under the handle.
func (m *Model) renderMessage(msg chat.Message) []string {
	if msg.System {
		return []string{m.theme.Chat.System.Render("· " + msg.Body)}
	}
	prefix := msg.From + ": "
	wrapped := wordwrap.String(msg.Body, m.width-len([]rune(prefix)))
	lines := strings.Split(wrapped, "\n")
	out := make([]string, 0, len(lines))
	indent := strings.Repeat(" ", len([]rune(prefix)))
	for i, line := range lines {
		if i == 0 {
			out = append(out, m.theme.Chat.Handle.Render(msg.From+":")+" "+m.theme.Chat.Body.Render(line))
			continue
		}
		out = append(out, indent+m.theme.Chat.Body.Render(line))
	}
	return out
}
