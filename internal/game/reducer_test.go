package game

import (
	"reflect"
	"testing"

	"pokerclient/pkg/protocol"
)

func TestApply_HandStartedResets(t *testing.T) {
	s := NewState()
	events := []protocol.Event{
		protocol.PlayerAdded{Who: 1},
		protocol.PlayerAdded{Who: 2},
		protocol.PlayerChips{Who: 1, Chips: 500},
		protocol.HandStarted{},
		protocol.DealtHole{Who: 1, Hole: []protocol.Card{
			{Rank: protocol.Ace, Suit: protocol.Hearts},
			{Rank: protocol.King, Suit: protocol.Diamonds},
		}},
		protocol.PhaseAdvanced{Next: protocol.PhaseFlop},
		protocol.DealtFlop{Flop: []protocol.Card{
			{Rank: 2, Suit: protocol.Clubs},
			{Rank: 5, Suit: protocol.Spades},
			{Rank: 9, Suit: protocol.Hearts},
		}},
		protocol.BetPlaced{Who: 2, Amount: 75},
		protocol.TurnAdvanced{Next: 1},
		protocol.ShowdownHand{Who: 2, Hole: []protocol.Card{
			{Rank: 3, Suit: protocol.Clubs},
			{Rank: 3, Suit: protocol.Hearts},
		}},
	}
	for _, ev := range events {
		if !s.Apply(ev) {
			t.Fatalf("Apply(%#v) not recognized", ev)
		}
	}

	if !s.Apply(protocol.HandStarted{}) {
		t.Fatal("Apply(HandStarted) not recognized")
	}

	if len(s.Board) != 0 {
		t.Errorf("board not reset: %v", s.Board)
	}
	if len(s.Hole) != 0 {
		t.Errorf("hole not reset: %v", s.Hole)
	}
	if len(s.ActiveBets) != 0 {
		t.Errorf("active bets not reset: %v", s.ActiveBets)
	}
	if len(s.Showdown) != 0 {
		t.Errorf("showdown not reset: %v", s.Showdown)
	}
	if s.Pot != 0 {
		t.Errorf("pot not reset: %d", s.Pot)
	}
	if s.TurnKnown {
		t.Error("turn not reset")
	}
	if !s.HandActive {
		t.Error("HandActive should be true after HandStarted")
	}
	// Identity and chip counts survive the reset.
	if !s.SelfKnown || s.SelfID != 1 {
		t.Errorf("self id lost on reset: known=%v id=%d", s.SelfKnown, s.SelfID)
	}
	if s.Players[1] != 500 {
		t.Errorf("chip counts lost on reset: %v", s.Players)
	}
}

func TestApply_PotConservation(t *testing.T) {
	s := NewState()
	bets := []int{10, 20, 5, 65}
	wins := []int{40, 70} // second win overdraws; pot floors at 0

	total := 0
	for i, amount := range bets {
		s.Apply(protocol.BetPlaced{Who: protocol.PlayerID(i%2 + 1), Amount: amount})
		total += amount
	}
	if s.Pot != total {
		t.Fatalf("pot = %d after bets, want %d", s.Pot, total)
	}

	s.Apply(protocol.WonPot{Who: 1, Amount: wins[0]})
	if s.Pot != total-wins[0] {
		t.Errorf("pot = %d after first win, want %d", s.Pot, total-wins[0])
	}
	s.Apply(protocol.WonPot{Who: 2, Amount: wins[1]})
	if s.Pot != 0 {
		t.Errorf("pot = %d after overdraw, want 0", s.Pot)
	}
}

func TestApply_BetsAccumulate(t *testing.T) {
	s := NewState()
	s.Apply(protocol.BetPlaced{Who: 4, Amount: 10})
	s.Apply(protocol.BetPlaced{Who: 4, Amount: 15})
	if s.ActiveBets[4] != 25 {
		t.Errorf("ActiveBets[4] = %d, want 25 (accumulated, not overwritten)", s.ActiveBets[4])
	}

	s.Apply(protocol.PhaseAdvanced{Next: protocol.PhaseTurn})
	if len(s.ActiveBets) != 0 {
		t.Errorf("active bets survived phase advance: %v", s.ActiveBets)
	}
	if s.Pot != 25 {
		t.Errorf("pot = %d, phase advance must not touch it", s.Pot)
	}
}

func TestApply_SelfIdentity(t *testing.T) {
	s := NewState()

	// A card-less DealtHole is about someone else; it must not claim
	// identity.
	s.Apply(protocol.DealtHole{Who: 9})
	if s.SelfKnown {
		t.Fatal("card-less DealtHole set self id")
	}
	if len(s.Hole) != 0 {
		t.Fatalf("card-less DealtHole set hole: %v", s.Hole)
	}

	hole := []protocol.Card{
		{Rank: protocol.Ace, Suit: protocol.Spades},
		{Rank: protocol.Ace, Suit: protocol.Clubs},
	}
	s.Apply(protocol.DealtHole{Who: 3, Hole: hole})
	if !s.SelfKnown || s.SelfID != 3 {
		t.Fatalf("self id = (%v, %d), want (true, 3)", s.SelfKnown, s.SelfID)
	}
	if !reflect.DeepEqual(s.Hole, hole) {
		t.Errorf("hole = %v, want %v", s.Hole, hole)
	}
}

func TestCallAmount(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*State)
		want  int
	}{
		{
			name:  "unknown identity",
			setup: func(s *State) { s.ActiveBets[1] = 50 },
			want:  0,
		},
		{
			name: "outstanding delta",
			setup: func(s *State) {
				s.SelfID, s.SelfKnown = 2, true
				s.ActiveBets[1] = 50
				s.ActiveBets[2] = 30
			},
			want: 20,
		},
		{
			name: "already highest",
			setup: func(s *State) {
				s.SelfID, s.SelfKnown = 1, true
				s.ActiveBets[1] = 50
				s.ActiveBets[2] = 30
			},
			want: 0,
		},
		{
			name: "no bets yet",
			setup: func(s *State) {
				s.SelfID, s.SelfKnown = 1, true
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			tt.setup(s)
			if got := s.CallAmount(); got != tt.want {
				t.Errorf("CallAmount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApply_UnrecognizedEvent(t *testing.T) {
	s := NewState()
	s.Apply(protocol.PlayerAdded{Who: 1})
	s.Apply(protocol.BetPlaced{Who: 1, Amount: 30})
	before := s.Snapshot()

	// nil is what the codec hands over for an unknown wire tag.
	if s.Apply(nil) {
		t.Error("Apply(nil) reported recognized")
	}

	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("unrecognized event changed state:\nbefore %#v\nafter  %#v", before, after)
	}
}

func TestApply_Scenario(t *testing.T) {
	s := NewState()
	events := []protocol.Event{
		protocol.PlayerAdded{Who: 1},
		protocol.PlayerAdded{Who: 2},
		protocol.PlayerChips{Who: 1, Chips: 200},
		protocol.HandStarted{},
		protocol.DealtHole{Who: 1, Hole: []protocol.Card{
			{Rank: protocol.Ace, Suit: protocol.Hearts},
			{Rank: protocol.King, Suit: protocol.Diamonds},
		}},
		protocol.PhaseAdvanced{Next: protocol.PhasePreflop},
		protocol.BetPlaced{Who: 1, Amount: 10},
		protocol.BetPlaced{Who: 2, Amount: 20},
		protocol.TurnAdvanced{Next: 1},
	}
	for _, ev := range events {
		if !s.Apply(ev) {
			t.Fatalf("Apply(%#v) not recognized", ev)
		}
	}

	if want := []protocol.Card{
		{Rank: protocol.Ace, Suit: protocol.Hearts},
		{Rank: protocol.King, Suit: protocol.Diamonds},
	}; !reflect.DeepEqual(s.Hole, want) {
		t.Errorf("hole = %v, want %v", s.Hole, want)
	}
	if s.Pot != 30 {
		t.Errorf("pot = %d, want 30", s.Pot)
	}
	if got := s.CallAmount(); got != 10 {
		t.Errorf("CallAmount() = %d, want 10", got)
	}
	if !s.TurnKnown || s.Turn != 1 {
		t.Errorf("turn = (%v, %d), want (true, 1)", s.TurnKnown, s.Turn)
	}

	// The gate accepts a call of the outstanding 10...
	act, err := GateAction(s, Intent{Kind: IntentCall})
	if err != nil {
		t.Fatalf("GateAction(call) error = %v", err)
	}
	if bet, ok := act.(protocol.Bet); !ok || bet.Amount != 10 {
		t.Errorf("call gated to %#v, want Bet{10}", act)
	}

	// ...and a bet anywhere in [10, own chips].
	act, err = GateAction(s, Intent{Kind: IntentBet, Amount: 150})
	if err != nil {
		t.Fatalf("GateAction(bet 150) error = %v", err)
	}
	if bet, ok := act.(protocol.Bet); !ok || bet.Amount != 150 {
		t.Errorf("bet gated to %#v, want Bet{150}", act)
	}
}

func TestState_RecentLogBounded(t *testing.T) {
	s := NewState()
	for i := 0; i < 20; i++ {
		s.Apply(protocol.BetPlaced{Who: 1, Amount: i + 1})
	}
	if len(s.RecentLog) != recentLogLimit {
		t.Fatalf("len(RecentLog) = %d, want %d", len(s.RecentLog), recentLogLimit)
	}
	if want := "player 1 bet 20"; s.RecentLog[len(s.RecentLog)-1] != want {
		t.Errorf("newest log line = %q, want %q", s.RecentLog[len(s.RecentLog)-1], want)
	}
}
