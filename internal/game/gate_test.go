package game

import (
	"errors"
	"testing"

	"pokerclient/pkg/protocol"
)

func seatedState(selfID, turn protocol.PlayerID, chips int) *State {
	s := NewState()
	s.SelfID, s.SelfKnown = selfID, true
	s.Turn, s.TurnKnown = turn, true
	s.Players[selfID] = chips
	return s
}

func TestGateAction_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		state   *State
		intent  Intent
		wantErr error
	}{
		{
			name:    "no identity yet",
			state:   NewState(),
			intent:  Intent{Kind: IntentFold},
			wantErr: ErrWaitingForHand,
		},
		{
			name: "no turn yet",
			state: func() *State {
				s := NewState()
				s.SelfID, s.SelfKnown = 1, true
				return s
			}(),
			intent:  Intent{Kind: IntentCall},
			wantErr: ErrWaitingForHand,
		},
		{
			name:    "someone else to act",
			state:   seatedState(1, 2, 100),
			intent:  Intent{Kind: IntentBet, Amount: 10},
			wantErr: ErrNotYourTurn,
		},
		{
			name:    "bet with empty stack",
			state:   seatedState(1, 1, 0),
			intent:  Intent{Kind: IntentBet, Amount: 10},
			wantErr: ErrBetUnavailable,
		},
		{
			name: "call amount above stack makes betting unavailable",
			state: func() *State {
				s := seatedState(1, 1, 15)
				s.ActiveBets[2] = 40
				return s
			}(),
			intent:  Intent{Kind: IntentBet, Amount: 40},
			wantErr: ErrBetUnavailable,
		},
		{
			name:    "bet above stack is refused, not truncated",
			state:   seatedState(1, 1, 100),
			intent:  Intent{Kind: IntentBet, Amount: 250},
			wantErr: ErrBetOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GateAction(tt.state, tt.intent)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GateAction() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGateAction_FoldAlwaysLegalOnTurn(t *testing.T) {
	s := seatedState(1, 1, 0) // even broke, folding is fine
	act, err := GateAction(s, Intent{Kind: IntentFold})
	if err != nil {
		t.Fatalf("GateAction(fold) error = %v", err)
	}
	if _, ok := act.(protocol.Fold); !ok {
		t.Errorf("GateAction(fold) = %#v, want Fold", act)
	}
}

func TestGateAction_CallClamping(t *testing.T) {
	tests := []struct {
		name       string
		chips      int
		theirBet   int
		ownBet     int
		wantAmount int
	}{
		{name: "plain call", chips: 100, theirBet: 30, wantAmount: 30},
		{name: "check when nothing outstanding", chips: 100, wantAmount: 0},
		{name: "clamped to stack", chips: 25, theirBet: 60, wantAmount: 25},
		{name: "partial delta", chips: 100, theirBet: 50, ownBet: 30, wantAmount: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seatedState(1, 1, tt.chips)
			if tt.theirBet > 0 {
				s.ActiveBets[2] = tt.theirBet
			}
			if tt.ownBet > 0 {
				s.ActiveBets[1] = tt.ownBet
			}
			act, err := GateAction(s, Intent{Kind: IntentCall})
			if err != nil {
				t.Fatalf("GateAction(call) error = %v", err)
			}
			bet, ok := act.(protocol.Bet)
			if !ok {
				t.Fatalf("GateAction(call) = %#v, want Bet", act)
			}
			if bet.Amount != tt.wantAmount {
				t.Errorf("call amount = %d, want %d", bet.Amount, tt.wantAmount)
			}
		})
	}
}

func TestGateAction_BetFloorRaised(t *testing.T) {
	s := seatedState(1, 1, 100)
	s.ActiveBets[2] = 40

	// A bet below the outstanding call is raised to it.
	act, err := GateAction(s, Intent{Kind: IntentBet, Amount: 5})
	if err != nil {
		t.Fatalf("GateAction(bet 5) error = %v", err)
	}
	if bet := act.(protocol.Bet); bet.Amount != 40 {
		t.Errorf("bet amount = %d, want 40 (raised to minimum)", bet.Amount)
	}

	// With no outstanding bet the floor is one chip.
	s2 := seatedState(1, 1, 100)
	act, err = GateAction(s2, Intent{Kind: IntentBet, Amount: 0})
	if err != nil {
		t.Fatalf("GateAction(bet 0) error = %v", err)
	}
	if bet := act.(protocol.Bet); bet.Amount != 1 {
		t.Errorf("bet amount = %d, want 1", bet.Amount)
	}
}
