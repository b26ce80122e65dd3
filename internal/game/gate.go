package game

import (
	"errors"
	"fmt"

	"pokerclient/pkg/protocol"
)

// Intent is a locally chosen action before the gate has looked at it.
type Intent struct {
	Kind   IntentKind
	Amount int // bet intents only
}

// IntentKind enumerates what the player asked to do.
type IntentKind int

const (
	IntentFold IntentKind = iota
	IntentCall            // also a check, when nothing is outstanding
	IntentBet
)

// Gate refusal reasons. These are local and never fatal to the session.
var (
	ErrWaitingForHand = errors.New("waiting for hand")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrBetUnavailable = errors.New("bet unavailable")
	ErrBetOutOfBounds = errors.New("bet out of bounds")
)

// GateAction decides whether an intent may be sent right now and, if so,
// returns the action to submit. It never mutates state.
//
// A call is clamped to the smaller of the outstanding delta and the
// player's stack. A bet below the legal minimum is raised to it. A bet
// above the stack is refused rather than truncated to it.
func GateAction(s *State, in Intent) (protocol.Action, error) {
	if !s.SelfKnown || !s.TurnKnown {
		return nil, ErrWaitingForHand
	}
	if s.Turn != s.SelfID {
		return nil, ErrNotYourTurn
	}

	switch in.Kind {
	case IntentFold:
		return protocol.Fold{}, nil

	case IntentCall:
		amount := s.CallAmount()
		if chips := s.OwnChips(); amount > chips {
			amount = chips
		}
		return protocol.Bet{Amount: amount}, nil

	case IntentBet:
		chips := s.OwnChips()
		if chips == 0 {
			return nil, fmt.Errorf("%w: no chips left", ErrBetUnavailable)
		}
		betMin := s.CallAmount()
		if betMin < 1 {
			betMin = 1
		}
		if betMin > chips {
			return nil, fmt.Errorf("%w: minimum %d exceeds stack %d", ErrBetUnavailable, betMin, chips)
		}
		amount := in.Amount
		if amount < betMin {
			amount = betMin
		}
		if amount > chips {
			return nil, fmt.Errorf("%w: %d exceeds stack %d", ErrBetOutOfBounds, amount, chips)
		}
		return protocol.Bet{Amount: amount}, nil

	default:
		return nil, fmt.Errorf("unknown intent kind %d", in.Kind)
	}
}
