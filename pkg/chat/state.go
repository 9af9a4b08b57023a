package chat

// HistoryLimit bounds the retained message log.
const HistoryLimit = 200

// State is the message log rendered by the chat view. Not safe for
// concurrent use; the UI owns it and mutates it only in Update.
type State struct {
	messages []Message
	seen     map[string]bool
	// Connected mirrors the client's link status for the status line.
	Connected bool
}

func NewState() *State {
	return &State{seen: make(map[string]bool)}
}

// Add appends a message, returning false for duplicates. Consecutive
// system messages collapse into the newest one so reconnect churn does
// not flood the log. Oldest messages fall off past HistoryLimit.
func (s *State) Add(m Message) bool {
	if m.ID != "" && s.seen[m.ID] {
		return false
	}
	if m.ID != "" {
		s.seen[m.ID] = true
	}

	if m.System && len(s.messages) > 0 && s.messages[len(s.messages)-1].System {
		dropped := s.messages[len(s.messages)-1]
		delete(s.seen, dropped.ID)
		s.messages[len(s.messages)-1] = m
		return true
	}

	s.messages = append(s.messages, m)
	if len(s.messages) > HistoryLimit {
		overflow := s.messages[:len(s.messages)-HistoryLimit]
		for _, old := range overflow {
			delete(s.seen, old.ID)
		}
		s.messages = append([]Message(nil), s.messages[len(s.messages)-HistoryLimit:]...)
	}
	return true
}

// Messages returns the retained log, oldest first.
func (s *State) Messages() []Message {
	return s.messages
}

func (s *State) Len() int {
	return len(s.messages)
}
