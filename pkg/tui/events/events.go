// Package events defines the typed messages flowing into the root
// Update loop. Fetches run as commands; these are their results. The
// bracket tree is only ever mutated inside Update, in response to one
// of these.
package events

import (
	"time"

	"github.com/holynakamoto/mmtui/pkg/bracket"
	"github.com/holynakamoto/mmtui/pkg/chat"
)

// TournamentLoadedMsg carries a freshly built bracket tree.
type TournamentLoadedMsg struct {
	Tournament *bracket.Tournament
}

// ScoresRefreshedMsg carries partial game updates from the scoreboard.
type ScoresRefreshedMsg struct {
	Games []bracket.Game
}

// GameDetailLoadedMsg carries the drill-down for one game.
type GameDetailLoadedMsg struct {
	Detail *bracket.GameDetail
}

// ChatReceivedMsg delivers one chat message from the relay client.
type ChatReceivedMsg struct {
	Message chat.Message
}

// RefreshTickMsg fires on the periodic score refresh schedule.
type RefreshTickMsg struct {
	At time.Time
}

// OverrideChangedMsg signals that the local bracket override file was
// rewritten and the tree should reload.
type OverrideChangedMsg struct{}

// ErrMsg reports a failed command. The last good tree stays rendered;
// the error shows in the status line until dismissed.
type ErrMsg struct {
	Err error
}

func (e ErrMsg) Error() string {
	return e.Err.Error()
}
