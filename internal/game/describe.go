package game

import (
	"github.com/paulhankin/poker"

	"pokerclient/pkg/protocol"
)

// DescribeHand names the best hand the client currently holds across hole
// and board cards, e.g. "Pair of Queens". It is display-only; what anyone
// actually wins is whatever the dealer's WonPot events say. Returns false
// until the hole is dealt and at least five cards are known.
func (s *State) DescribeHand() (string, bool) {
	if len(s.Hole) < 2 || len(s.Hole)+len(s.Board) < 5 {
		return "", false
	}
	cards := make([]poker.Card, 0, len(s.Hole)+len(s.Board))
	for _, c := range append(append([]protocol.Card(nil), s.Hole...), s.Board...) {
		pc, ok := toEvalCard(c)
		if !ok {
			return "", false
		}
		cards = append(cards, pc)
	}
	desc, err := poker.Describe(cards)
	if err != nil {
		return "", false
	}
	return desc, true
}

func toEvalCard(c protocol.Card) (poker.Card, bool) {
	var suit poker.Suit
	switch c.Suit {
	case protocol.Clubs:
		suit = poker.Club
	case protocol.Diamonds:
		suit = poker.Diamond
	case protocol.Hearts:
		suit = poker.Heart
	case protocol.Spades:
		suit = poker.Spade
	default:
		return 0, false
	}
	var rank poker.Rank
	switch {
	case c.Rank == protocol.Ace:
		rank = poker.Rank(1)
	case c.Rank >= 2 && c.Rank <= protocol.King:
		rank = poker.Rank(c.Rank)
	default:
		return 0, false
	}
	card, err := poker.MakeCard(suit, rank)
	if err != nil {
		return 0, false
	}
	return card, true
}
