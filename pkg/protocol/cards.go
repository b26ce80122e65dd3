package protocol

import "fmt"

// Rank is a card rank: 2-10 at face value, jack through king 11-13, ace 14.
// Zero means unspecified.
type Rank uint8

// Named ranks for face cards and the ace.
const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Suit is a card suit. Zero means unspecified.
type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Card represents one playing card as asserted by the dealer.
type Card struct {
	Rank Rank
	Suit Suit
}

// String renders the card as rank plus suit glyph, e.g. "A♥" or "10♣".
func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	case 0:
		rank = "?"
	default:
		rank = fmt.Sprintf("%d", uint8(c.Rank))
	}
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♦"
	case Hearts:
		suit = "♥"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}
	return rank + suit
}

// Phase is a betting round stage.
type Phase int

const (
	PhaseUnspecified Phase = iota
	PhaseHolding
	PhasePreflop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHolding:
		return "holding"
	case PhasePreflop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	default:
		return "unspecified"
	}
}
