package game

import "pokerclient/pkg/protocol"

// Apply folds one dealer event into the state and reports whether the
// event was recognized. A nil or unrecognized event leaves the state
// untouched and returns false. The dealer may speak a newer protocol
// revision than this client knows.
//
// State only ever rewinds on the explicit reset signals: HandStarted
// clears everything per-hand, PhaseAdvanced clears only the active bets.
func (s *State) Apply(ev protocol.Event) bool {
	switch e := ev.(type) {
	case protocol.PlayerAdded:
		if _, ok := s.Players[e.Who]; !ok {
			s.Players[e.Who] = 0
		}
		s.logf("player %d sat down", e.Who)

	case protocol.PlayerRemoved:
		delete(s.Players, e.Who)
		s.logf("player %d left the table", e.Who)

	case protocol.PlayerChips:
		s.Players[e.Who] = e.Chips
		s.logf("player %d has %d chips", e.Who, e.Chips)

	case protocol.HandStarted:
		s.Board = nil
		s.Hole = nil
		s.ActiveBets = make(map[protocol.PlayerID]int)
		s.Pot = 0
		s.Showdown = make(map[protocol.PlayerID][]protocol.Card)
		s.TurnKnown = false
		s.HandActive = true
		s.logf("new hand started")

	case protocol.PhaseAdvanced:
		s.Phase = e.Next
		s.ActiveBets = make(map[protocol.PlayerID]int)
		s.logf("phase: %s", e.Next)

	case protocol.DealtHole:
		if len(e.Hole) == 0 {
			// The dealer withholds other players' cards.
			s.logf("player %d was dealt hole cards", e.Who)
			break
		}
		if !s.SelfKnown {
			s.SelfID = e.Who
			s.SelfKnown = true
		}
		if e.Who == s.SelfID {
			s.Hole = append([]protocol.Card(nil), e.Hole...)
			s.logf("dealt %s", cardsString(e.Hole))
		}

	case protocol.DealtFlop:
		s.Board = append([]protocol.Card(nil), e.Flop...)
		s.logf("flop: %s", cardsString(e.Flop))

	case protocol.DealtStreet:
		s.Board = append(s.Board, e.Street)
		s.logf("board: %s", e.Street)

	case protocol.BetPlaced:
		s.ActiveBets[e.Who] += e.Amount
		s.Pot += e.Amount
		s.logf("player %d bet %d", e.Who, e.Amount)

	case protocol.TurnAdvanced:
		s.Turn = e.Next
		s.TurnKnown = true
		if s.SelfKnown && e.Next == s.SelfID {
			s.logf("your turn")
		} else {
			s.logf("player %d to act", e.Next)
		}

	case protocol.WonPot:
		s.Pot -= e.Amount
		if s.Pot < 0 {
			s.Pot = 0
		}
		s.logf("player %d won %d", e.Who, e.Amount)

	case protocol.ShowdownHand:
		s.Showdown[e.Who] = append([]protocol.Card(nil), e.Hole...)
		s.logf("player %d shows %s", e.Who, cardsString(e.Hole))

	default:
		return false
	}
	return true
}
