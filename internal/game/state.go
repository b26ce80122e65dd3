// Package game owns the client-side view of the table: the state aggregate
// folded from dealer events, the derived betting queries, and the gate that
// decides whether a locally chosen action may be sent.
package game

import (
	"fmt"
	"strings"

	"pokerclient/pkg/protocol"
)

// recentLogLimit bounds the activity log kept for display.
const recentLogLimit = 6

// State is the client's view of the table. It is created once per session
// and mutated only by Apply; everything else reads it.
type State struct {
	// SelfID is this client's player id, learned from the first DealtHole
	// event that carries cards. Valid only when SelfKnown; never changes
	// once set.
	SelfID    protocol.PlayerID
	SelfKnown bool

	Phase protocol.Phase
	Board []protocol.Card
	Hole  []protocol.Card

	// Players maps seated player ids to chip counts.
	Players map[protocol.PlayerID]int

	// ActiveBets maps player ids to chips committed in the current phase.
	ActiveBets map[protocol.PlayerID]int

	// Turn is the player to act, per the last TurnAdvanced. Valid only
	// when TurnKnown. Not validated against Players.
	Turn      protocol.PlayerID
	TurnKnown bool

	Pot        int
	Showdown   map[protocol.PlayerID][]protocol.Card
	HandActive bool

	// RecentLog holds the last few human-readable activity lines, newest
	// last.
	RecentLog []string
}

// NewState returns an empty table view.
func NewState() *State {
	return &State{
		Phase:      protocol.PhaseHolding,
		Players:    make(map[protocol.PlayerID]int),
		ActiveBets: make(map[protocol.PlayerID]int),
		Showdown:   make(map[protocol.PlayerID][]protocol.Card),
	}
}

// Snapshot deep-copies the state for handing to a renderer.
func (s *State) Snapshot() State {
	out := *s
	out.Board = append([]protocol.Card(nil), s.Board...)
	out.Hole = append([]protocol.Card(nil), s.Hole...)
	out.RecentLog = append([]string(nil), s.RecentLog...)
	out.Players = make(map[protocol.PlayerID]int, len(s.Players))
	for id, chips := range s.Players {
		out.Players[id] = chips
	}
	out.ActiveBets = make(map[protocol.PlayerID]int, len(s.ActiveBets))
	for id, amount := range s.ActiveBets {
		out.ActiveBets[id] = amount
	}
	out.Showdown = make(map[protocol.PlayerID][]protocol.Card, len(s.Showdown))
	for id, cards := range s.Showdown {
		out.Showdown[id] = append([]protocol.Card(nil), cards...)
	}
	return out
}

// CallAmount returns how many chips this client must commit to match the
// highest active bet. Zero when the client's id is still unknown.
func (s *State) CallAmount() int {
	if !s.SelfKnown {
		return 0
	}
	highest := 0
	for _, amount := range s.ActiveBets {
		if amount > highest {
			highest = amount
		}
	}
	if diff := highest - s.ActiveBets[s.SelfID]; diff > 0 {
		return diff
	}
	return 0
}

// OwnChips returns this client's chip count, zero when unknown.
func (s *State) OwnChips() int {
	if !s.SelfKnown {
		return 0
	}
	return s.Players[s.SelfID]
}

func (s *State) logf(format string, args ...any) {
	s.RecentLog = append(s.RecentLog, fmt.Sprintf(format, args...))
	if n := len(s.RecentLog) - recentLogLimit; n > 0 {
		s.RecentLog = append([]string(nil), s.RecentLog[n:]...)
	}
}

func cardsString(cards []protocol.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
