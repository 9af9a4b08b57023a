// Package app wires the bracket, scoreboard, detail, chat, and pick
// wizard views into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/bracket/layout"
	"github.com/holynakamoto/mmtui/pkg/bracket/nav"
	"github.com/holynakamoto/mmtui/pkg/chat"
	"github.com/holynakamoto/mmtui/pkg/config"
	"github.com/holynakamoto/mmtui/pkg/ncaa"
	"github.com/holynakamoto/mmtui/pkg/picks"
	"github.com/holynakamoto/mmtui/pkg/timeutil"
	"github.com/holynakamoto/mmtui/pkg/tui/components/bottombar"
	"github.com/holynakamoto/mmtui/pkg/tui/components/bracketview"
	"github.com/holynakamoto/mmtui/pkg/tui/components/chatpane"
	"github.com/holynakamoto/mmtui/pkg/tui/components/finalfour"
	"github.com/holynakamoto/mmtui/pkg/tui/components/gamedetail"
	"github.com/holynakamoto/mmtui/pkg/tui/components/picksview"
	"github.com/holynakamoto/mmtui/pkg/tui/events"
	"github.com/holynakamoto/mmtui/pkg/tui/theme"
)

type tab int

const (
	tabBracket tab = iota
	tabScoreboard
	tabDetail
	tabChat
	tabPicks
)

var tabNames = [...]string{"Bracket", "Scoreboard", "Game Detail", "Chat", "Pick Wizard"}

const (
	shortHelp = "Keys: h/l=round  j/k=move  r=region  Enter=details  ?=help  q=quit"
	longHelp  = "h/l=prev/next round  j/k=move game  r=cycle region  1-5/Tab=switch tab  Enter=game detail  e=dismiss error  n=new bracket  q=quit"
)

// Fetcher is the slice of the data client the UI consumes.
type Fetcher interface {
	FetchTournament(ctx context.Context) (*bracket.Tournament, error)
	FetchScoreboard(ctx context.Context) ([]bracket.Game, error)
	FetchGameDetail(ctx context.Context, gameID string) (*bracket.GameDetail, error)
}

// Model is the root UI state.
type Model struct {
	ctx      context.Context
	client   Fetcher
	settings *config.Settings
	log      *zap.Logger
	theme    theme.Theme

	nav nav.State
	tab tab

	width  int
	height int

	loading  bool
	helpLong bool
	spin     spinner.Model

	brackets bracketview.Model
	national finalfour.Model
	detail   *gamedetail.Model
	footer   bottombar.Model

	chatState  *chat.State
	chatClient *chat.Client
	chatPane   *chatpane.Model

	picksPane *picksview.Model
	store     *picks.Store

	overrideCh  <-chan struct{}
	lastRefresh time.Time
}

// New builds the root model. The chat client, when configured, is
// started by Init.
func New(ctx context.Context, client Fetcher, settings *config.Settings, log *zap.Logger) Model {
	th := theme.Default()
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	chatState := chat.NewState()
	var chatClient *chat.Client
	if settings.ChatURL != "" {
		chatClient = chat.NewClient(settings.ChatURL, settings.ChatRoom, settings.ChatHandle, log)
	}

	var overrideCh <-chan struct{}
	if settings.BracketOverride != "" {
		ch, err := ncaa.WatchOverride(ctx, settings.BracketOverride)
		if err == nil {
			overrideCh = ch
		} else if log != nil {
			log.Warn("override watch unavailable", zap.Error(err))
		}
	}

	return Model{
		ctx:        ctx,
		client:     client,
		settings:   settings,
		log:        log,
		theme:      th,
		loading:    true,
		spin:       sp,
		brackets:   bracketview.New(th),
		national:   finalfour.New(th),
		detail:     gamedetail.New(th),
		footer:     bottombar.New(th),
		chatState:  chatState,
		chatClient: chatClient,
		chatPane:   chatpane.New(th, chatState),
		picksPane:  picksview.New(th),
		store:      picks.NewStore(settings.PicksPath),
		overrideCh: overrideCh,
		width:      100,
		height:     32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTournament(), m.spin.Tick}
	if m.chatClient != nil {
		go m.chatClient.Run(m.ctx)
		cmds = append(cmds, m.listenChat())
	}
	if m.overrideCh != nil {
		cmds = append(cmds, listenOverride(m.overrideCh))
	}
	return tea.Batch(cmds...)
}

func listenOverride(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return events.OverrideChangedMsg{}
	}
}

func (m *Model) loadTournament() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		t, err := client.FetchTournament(ctx)
		if err != nil {
			return events.ErrMsg{Err: err}
		}
		return events.TournamentLoadedMsg{Tournament: t}
	}
}

func (m *Model) refreshScores() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		games, err := client.FetchScoreboard(ctx)
		if err != nil {
			return events.ErrMsg{Err: err}
		}
		return events.ScoresRefreshedMsg{Games: games}
	}
}

func (m *Model) loadDetail(gameID string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		d, err := client.FetchGameDetail(ctx, gameID)
		if err != nil {
			return events.ErrMsg{Err: err}
		}
		return events.GameDetailLoadedMsg{Detail: d}
	}
}

func (m *Model) listenChat() tea.Cmd {
	incoming := m.chatClient.Incoming()
	return func() tea.Msg {
		msg, ok := <-incoming
		if !ok {
			return nil
		}
		return events.ChatReceivedMsg{Message: msg}
	}
}

func (m *Model) scheduleRefresh() tea.Cmd {
	interval := m.settings.RefreshInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return events.RefreshTickMsg{At: at}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatPane.SetSize(msg.Width, m.contentHeight())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			m.footer.SetSpinner(m.spin.View())
			cmds = append(cmds, cmd)
		} else {
			m.footer.SetSpinner("")
		}

	case events.TournamentLoadedMsg:
		m.loading = false
		m.footer.SetSpinner("")
		m.nav.Load(msg.Tournament)
		m.footer.SetStatus(fmt.Sprintf("%s %d loaded", msg.Tournament.Name, msg.Tournament.Year))
		m.footer.SetLiveCount(liveCount(msg.Tournament))
		cmds = append(cmds, m.scheduleRefresh())

	case events.ScoresRefreshedMsg:
		m.nav.MergeUpdates(msg.Games)
		m.lastRefresh = time.Now()
		if m.nav.Tournament != nil {
			m.footer.SetLiveCount(liveCount(m.nav.Tournament))
		}
		m.footer.SetStatus("updated just now")

	case events.GameDetailLoadedMsg:
		m.detail.SetDetail(msg.Detail)

	case events.ChatReceivedMsg:
		m.chatState.Add(msg.Message)
		m.chatState.Connected = true
		cmds = append(cmds, m.listenChat())

	case events.RefreshTickMsg:
		if !m.lastRefresh.IsZero() {
			m.footer.SetStatus("updated " + timeutil.Ago(m.lastRefresh, msg.At))
		}
		cmds = append(cmds, m.refreshScores(), m.scheduleRefresh())

	case events.OverrideChangedMsg:
		m.footer.SetStatus("bracket file changed, reloading")
		cmds = append(cmds, m.loadTournament(), listenOverride(m.overrideCh))

	case events.ErrMsg:
		m.loading = false
		m.footer.SetSpinner("")
		m.footer.SetError(msg.Err.Error())
		if m.log != nil {
			m.log.Warn("background fetch failed", zap.Error(msg.Err))
		}

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	if msg.String() == "ctrl+c" {
		return []tea.Cmd{tea.Quit}
	}

	if m.tab == tabChat && m.chatPane.Focused() {
		switch msg.String() {
		case "esc":
			m.chatPane.Blur()
		case "enter":
			if body := m.chatPane.Submit(); body != "" && m.chatClient != nil {
				if !m.chatClient.Send(body) {
					m.footer.SetStatus("chat offline, message dropped")
				}
			}
		default:
			if cmd := m.chatPane.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return cmds
	}

	if m.tab == tabPicks && m.picksPane.Active() {
		if m.handlePicksKey(msg, &cmds) {
			return cmds
		}
	}

	m.handleNormalKey(msg, &cmds)
	return cmds
}

// handlePicksKey consumes keys owned by the wizard; unhandled keys fall
// through to the normal map.
func (m *Model) handlePicksKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "j", "k", "down", "up":
		m.picksPane.Toggle()
	case "enter":
		if m.picksPane.Confirm() {
			m.savePicks()
		}
	case "u":
		m.picksPane.Back()
	case "s":
		m.savePicks()
	case "esc":
		m.tab = tabBracket
	default:
		return false
	}
	return true
}

func (m *Model) savePicks() {
	p := m.picksPane.Picks()
	if p == nil {
		return
	}
	if err := m.store.Save(p); err != nil {
		m.footer.SetError("saving picks: " + err.Error())
		return
	}
	m.picksPane.MarkSaved()
	m.footer.SetStatus("bracket saved")
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q":
		*cmds = append(*cmds, tea.Quit)

	case "1", "2", "3", "4", "5":
		m.tab = tab(int(msg.String()[0] - '1'))
		m.onTabEnter(cmds)
	case "tab":
		m.tab = (m.tab + 1) % tab(len(tabNames))
		m.onTabEnter(cmds)
	case "esc":
		m.tab = tabBracket

	case "h", "left":
		m.nav.PrevRound()
	case "l", "right":
		m.nav.NextRound()
	case "j", "down":
		if m.tab == tabDetail {
			m.detail.ScrollDown(1)
		} else {
			m.nav.GameDown()
		}
	case "k", "up":
		if m.tab == tabDetail {
			m.detail.ScrollUp(1)
		} else {
			m.nav.GameUp()
		}
	case "r":
		m.nav.CycleRegion()

	case "enter":
		if g := m.nav.SelectedGameRef(); g != nil {
			m.tab = tabDetail
			m.detail.SetGame(g)
			m.detail.SetLoading(true)
			*cmds = append(*cmds, m.loadDetail(g.ID))
		}

	case "i":
		if m.tab == tabChat {
			if cmd := m.chatPane.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		}

	case "n":
		if m.tab == tabPicks && m.nav.Tournament != nil {
			user := m.settings.ChatHandle
			if user == "" {
				user = "me"
			}
			p, err := m.store.Load(user, m.nav.Tournament.Year)
			if err != nil {
				p = picks.New(user, m.nav.Tournament.Year)
			}
			m.picksPane.Start(m.nav.Tournament, p, user)
		}

	case "e":
		m.footer.SetError("")

	case "R":
		*cmds = append(*cmds, m.refreshScores())

	case "?":
		m.helpLong = !m.helpLong
		if m.helpLong {
			m.footer.SetHelp(longHelp)
		} else {
			m.footer.SetHelp(shortHelp)
		}
	}
}

func (m *Model) onTabEnter(cmds *[]tea.Cmd) {
	m.footer.SetMode(bottombar.ModeNormal)
	if !m.helpLong {
		m.footer.SetHelp(shortHelp)
	}

	switch m.tab {
	case tabChat:
		m.footer.SetMode(bottombar.ModeChat)
		if !m.helpLong {
			m.footer.SetHelp("Keys: i=compose  Enter=send  Esc=stop typing  1-5=tabs  q=quit")
		}
		m.chatPane.SetSize(m.width, m.contentHeight())
		if cmd := m.chatPane.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	case tabPicks:
		m.footer.SetMode(bottombar.ModeWizard)
		if !m.helpLong {
			m.footer.SetHelp("Keys: n=new bracket  j/k=choose  Enter=pick  u=undo  s=save  Esc=back")
		}
	case tabDetail:
		if g := m.nav.SelectedGameRef(); g != nil && g.ID != m.detail.GameID() {
			m.detail.SetGame(g)
			m.detail.SetLoading(true)
			*cmds = append(*cmds, m.loadDetail(g.ID))
		}
	}
}

// contentHeight is the rows left for the active view after the tab bar
// and footer.
func (m Model) contentHeight() int {
	h := m.height - 2 - m.footer.Height()
	if h < 4 {
		h = 4
	}
	return h
}

func (m Model) View() string {
	var sections []string
	sections = append(sections, m.tabBar())

	switch m.tab {
	case tabBracket:
		sections = append(sections, m.bracketSection())
	case tabScoreboard:
		sections = append(sections, m.scoreboardSection())
	case tabDetail:
		sections = append(sections, m.detail.View(m.width, m.contentHeight()))
	case tabChat:
		sections = append(sections, m.chatPane.View())
	case tabPicks:
		sections = append(sections, m.picksPane.View(m.nav.Tournament))
	}

	footer, _ := m.footer.View()
	sections = append(sections, footer)
	return strings.Join(sections, "\n\n")
}

func (m Model) tabBar() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if tab(i) == m.tab {
			parts = append(parts, m.theme.Tabs.Active.Render(label))
		} else {
			parts = append(parts, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) bracketSection() string {
	t := m.nav.Tournament
	if t == nil {
		if m.loading {
			return "Loading bracket..."
		}
		return "No tournament loaded."
	}

	header := m.bracketHeader(t)

	if m.nav.ViewRound.IsFinalFour() {
		national := t.Region(bracket.NationalRegion)
		sel := finalfour.Selection{Active: true, Round: m.nav.ViewRound, Game: m.nav.SelectedGame}
		lines := m.national.Render(national, m.width, sel, m.currentPicks())
		return header + "\n\n" + strings.Join(lines, "\n")
	}

	region := m.nav.ViewedRegion()
	sel := bracketview.Selection{Active: true, Round: m.nav.ViewRound, Game: m.nav.SelectedGame}
	lines := m.brackets.Render(region, m.width, false, false, sel, m.currentPicks())
	lines = m.clipBracket(lines)
	return header + "\n\n" + strings.Join(lines, "\n")
}

func (m Model) bracketHeader(t *bracket.Tournament) string {
	region := ""
	if r := m.nav.ViewedRegion(); r != nil {
		region = r.Name
	}
	title := fmt.Sprintf("%s %d | %s | %s", t.Name, t.Year, m.nav.ViewRound.Label(), region)
	return m.theme.Bracket.RegionTitle.Render(title)
}

// clipBracket scrolls the canvas so the selected game stays visible.
func (m Model) clipBracket(lines []string) []string {
	viewport := m.contentHeight() - 2
	if viewport >= len(lines) {
		return lines
	}
	if viewport < 1 {
		viewport = 1
	}

	grid := layout.Compute(m.width, false, false)
	depth := layout.DepthForRound(m.nav.ViewRound)
	cells := grid.CellsForDepth(depth)
	center := layout.RegionHeight / 2
	if m.nav.SelectedGame < len(cells) {
		center = cells[m.nav.SelectedGame].CenterRow
	}

	offset := center - viewport/2
	if offset > len(lines)-viewport {
		offset = len(lines) - viewport
	}
	if offset < 0 {
		offset = 0
	}
	return lines[offset : offset+viewport]
}

func (m Model) currentPicks() *picks.Picks {
	return m.picksPane.Picks()
}

func liveCount(t *bracket.Tournament) int {
	n := 0
	for _, region := range t.Regions {
		for _, round := range region.Rounds {
			for i := range round.Games {
				if round.Games[i].IsLive() {
					n++
				}
			}
		}
	}
	return n
}
