// Package protocol implements the dealer wire protocol: the message
// vocabulary (events, actions, dealer errors), the protobuf codec for it,
// and the length-prefix framing that delimits messages on the stream.
//
// The codec writes and reads the schema in proto/poker.proto directly with
// protowire rather than through generated code; the field number constants
// below mirror that file. Unknown tags are skipped on decode, and an
// Event or Message oneof carrying an unknown tag decodes to its zero
// value so callers can drop it. The dealer can grow the schema without
// breaking older clients.
package protocol

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from proto/poker.proto.
const (
	fieldResponseMessages protowire.Number = 1

	fieldMessageEvent protowire.Number = 1
	fieldMessageError protowire.Number = 2

	fieldErrorServer     protowire.Number = 1
	fieldErrorGame       protowire.Number = 2
	fieldErrorPlayerMgmt protowire.Number = 3

	fieldEventPlayerAdded   protowire.Number = 1
	fieldEventPlayerRemoved protowire.Number = 2
	fieldEventBetPlaced     protowire.Number = 3
	fieldEventTurnAdvanced  protowire.Number = 4
	fieldEventPhaseAdvanced protowire.Number = 5
	fieldEventWonPot        protowire.Number = 6
	fieldEventHandStarted   protowire.Number = 7
	fieldEventDealtHole     protowire.Number = 8
	fieldEventDealtFlop     protowire.Number = 9
	fieldEventDealtStreet   protowire.Number = 10
	fieldEventPlayerChips   protowire.Number = 11
	fieldEventShowdownHand  protowire.Number = 12

	fieldActionFold protowire.Number = 1
	fieldActionBet  protowire.Number = 2
	fieldBetAmount  protowire.Number = 1

	// Sub-message fields. Every event puts who/next first and any amount,
	// phase or card list second; Card is rank then suit.
	fieldWho    protowire.Number = 1
	fieldAmount protowire.Number = 2
	fieldCards  protowire.Number = 2
	fieldFlop   protowire.Number = 1
	fieldStreet protowire.Number = 1

	fieldCardRank protowire.Number = 1
	fieldCardSuit protowire.Number = 2
)

// Message is one sub-message of a dealer response: either an event or a
// dealer-reported error. Both fields are nil when the wire tag was
// unrecognized; such messages carry no information and are dropped.
type Message struct {
	Event Event
	Err   *ServerError
}

// Response is the ordered batch of sub-messages carried by one frame.
type Response []Message

// EncodeAction serializes an action for the dealer.
func EncodeAction(a Action) []byte {
	var b []byte
	switch v := a.(type) {
	case Fold:
		b = appendSub(b, fieldActionFold, nil)
	case Bet:
		b = appendSub(b, fieldActionBet, appendUint(nil, fieldBetAmount, uint64(v.Amount)))
	}
	return b
}

// EncodeResponse serializes a response batch. The client itself only
// decodes responses; encoding exists for tests and mock dealers.
func EncodeResponse(res Response) []byte {
	var b []byte
	for _, msg := range res {
		var sub []byte
		if msg.Err != nil {
			sub = appendSub(nil, fieldMessageError, encodeError(*msg.Err))
		} else if msg.Event != nil {
			sub = appendSub(nil, fieldMessageEvent, encodeEvent(msg.Event))
		}
		b = appendSub(b, fieldResponseMessages, sub)
	}
	return b
}

// DecodeResponse parses one frame payload from the dealer. It only errors
// on malformed wire data; unknown tags decode to empty messages.
func DecodeResponse(b []byte) (Response, error) {
	var res Response
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("response: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if num == fieldResponseMessages && typ == protowire.BytesType {
			sub, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("response: %w", protowire.ParseError(n))
			}
			b = b[n:]
			msg, err := decodeMessage(sub)
			if err != nil {
				return nil, err
			}
			res = append(res, msg)
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("response: %w", protowire.ParseError(n))
		}
		b = b[n:]
	}
	return res, nil
}

func decodeMessage(b []byte) (Message, error) {
	var msg Message
	err := walkFields(b, func(num protowire.Number, sub []byte, _ uint64) error {
		switch num {
		case fieldMessageEvent:
			ev, err := decodeEvent(sub)
			if err != nil {
				return err
			}
			msg.Event = ev
		case fieldMessageError:
			se, err := decodeError(sub)
			if err != nil {
				return err
			}
			msg.Err = se
		}
		return nil
	})
	return msg, err
}

func decodeEvent(b []byte) (Event, error) {
	var ev Event
	err := walkFields(b, func(num protowire.Number, sub []byte, _ uint64) error {
		var derr error
		switch num {
		case fieldEventPlayerAdded:
			who, err := decodeWho(sub)
			ev, derr = PlayerAdded{Who: who}, err
		case fieldEventPlayerRemoved:
			who, err := decodeWho(sub)
			ev, derr = PlayerRemoved{Who: who}, err
		case fieldEventBetPlaced:
			who, amount, err := decodeWhoAmount(sub)
			ev, derr = BetPlaced{Who: who, Amount: amount}, err
		case fieldEventTurnAdvanced:
			who, err := decodeWho(sub)
			ev, derr = TurnAdvanced{Next: who}, err
		case fieldEventPhaseAdvanced:
			next, err := decodeWho(sub)
			ev, derr = PhaseAdvanced{Next: Phase(next)}, err
		case fieldEventWonPot:
			who, amount, err := decodeWhoAmount(sub)
			ev, derr = WonPot{Who: who, Amount: amount}, err
		case fieldEventHandStarted:
			ev = HandStarted{}
		case fieldEventDealtHole:
			who, cards, err := decodeWhoCards(sub)
			ev, derr = DealtHole{Who: who, Hole: cards}, err
		case fieldEventDealtFlop:
			cards, err := decodeCardList(sub, fieldFlop)
			ev, derr = DealtFlop{Flop: cards}, err
		case fieldEventDealtStreet:
			cards, err := decodeCardList(sub, fieldStreet)
			if err == nil && len(cards) > 0 {
				ev = DealtStreet{Street: cards[0]}
			}
			derr = err
		case fieldEventPlayerChips:
			who, chips, err := decodeWhoAmount(sub)
			ev, derr = PlayerChips{Who: who, Chips: chips}, err
		case fieldEventShowdownHand:
			who, cards, err := decodeWhoCards(sub)
			ev, derr = ShowdownHand{Who: who, Hole: cards}, err
		}
		return derr
	})
	return ev, err
}

func decodeError(b []byte) (*ServerError, error) {
	var se *ServerError
	err := walkFields(b, func(num protowire.Number, _ []byte, v uint64) error {
		switch num {
		case fieldErrorServer:
			se = &ServerError{Group: ErrorGroupServer, Code: uint32(v)}
		case fieldErrorGame:
			se = &ServerError{Group: ErrorGroupGame, Code: uint32(v)}
		case fieldErrorPlayerMgmt:
			se = &ServerError{Group: ErrorGroupPlayerMgmt, Code: uint32(v)}
		}
		return nil
	})
	return se, err
}

func decodeWho(b []byte) (PlayerID, error) {
	var who PlayerID
	err := walkFields(b, func(num protowire.Number, _ []byte, v uint64) error {
		if num == fieldWho {
			who = PlayerID(v)
		}
		return nil
	})
	return who, err
}

func decodeWhoAmount(b []byte) (PlayerID, int, error) {
	var who PlayerID
	var amount int
	err := walkFields(b, func(num protowire.Number, _ []byte, v uint64) error {
		switch num {
		case fieldWho:
			who = PlayerID(v)
		case fieldAmount:
			amount = int(v)
		}
		return nil
	})
	return who, amount, err
}

func decodeWhoCards(b []byte) (PlayerID, []Card, error) {
	var who PlayerID
	var cards []Card
	err := walkFields(b, func(num protowire.Number, sub []byte, v uint64) error {
		switch num {
		case fieldWho:
			who = PlayerID(v)
		case fieldCards:
			card, err := decodeCard(sub)
			if err != nil {
				return err
			}
			cards = append(cards, card)
		}
		return nil
	})
	return who, cards, err
}

func decodeCardList(b []byte, field protowire.Number) ([]Card, error) {
	var cards []Card
	err := walkFields(b, func(num protowire.Number, sub []byte, _ uint64) error {
		if num == field {
			card, err := decodeCard(sub)
			if err != nil {
				return err
			}
			cards = append(cards, card)
		}
		return nil
	})
	return cards, err
}

func decodeCard(b []byte) (Card, error) {
	var card Card
	err := walkFields(b, func(num protowire.Number, _ []byte, v uint64) error {
		switch num {
		case fieldCardRank:
			card.Rank = Rank(v)
		case fieldCardSuit:
			card.Suit = Suit(v)
		}
		return nil
	})
	return card, err
}

// walkFields visits every top-level field of an embedded message. Bytes
// fields arrive in sub, varint fields in v; other wire types are skipped.
func walkFields(b []byte, fn func(num protowire.Number, sub []byte, v uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("field tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch typ {
		case protowire.BytesType:
			sub, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			if err := fn(num, sub, 0); err != nil {
				return err
			}
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			if err := fn(num, nil, v); err != nil {
				return err
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}

func encodeEvent(ev Event) []byte {
	switch e := ev.(type) {
	case PlayerAdded:
		return appendSub(nil, fieldEventPlayerAdded, appendUint(nil, fieldWho, uint64(e.Who)))
	case PlayerRemoved:
		return appendSub(nil, fieldEventPlayerRemoved, appendUint(nil, fieldWho, uint64(e.Who)))
	case BetPlaced:
		sub := appendUint(nil, fieldWho, uint64(e.Who))
		sub = appendUint(sub, fieldAmount, uint64(e.Amount))
		return appendSub(nil, fieldEventBetPlaced, sub)
	case TurnAdvanced:
		return appendSub(nil, fieldEventTurnAdvanced, appendUint(nil, fieldWho, uint64(e.Next)))
	case PhaseAdvanced:
		return appendSub(nil, fieldEventPhaseAdvanced, appendUint(nil, fieldWho, uint64(e.Next)))
	case WonPot:
		sub := appendUint(nil, fieldWho, uint64(e.Who))
		sub = appendUint(sub, fieldAmount, uint64(e.Amount))
		return appendSub(nil, fieldEventWonPot, sub)
	case HandStarted:
		return appendSub(nil, fieldEventHandStarted, nil)
	case DealtHole:
		sub := appendUint(nil, fieldWho, uint64(e.Who))
		for _, c := range e.Hole {
			sub = appendSub(sub, fieldCards, encodeCard(c))
		}
		return appendSub(nil, fieldEventDealtHole, sub)
	case DealtFlop:
		var sub []byte
		for _, c := range e.Flop {
			sub = appendSub(sub, fieldFlop, encodeCard(c))
		}
		return appendSub(nil, fieldEventDealtFlop, sub)
	case DealtStreet:
		return appendSub(nil, fieldEventDealtStreet, appendSub(nil, fieldStreet, encodeCard(e.Street)))
	case PlayerChips:
		sub := appendUint(nil, fieldWho, uint64(e.Who))
		sub = appendUint(sub, fieldAmount, uint64(e.Chips))
		return appendSub(nil, fieldEventPlayerChips, sub)
	case ShowdownHand:
		sub := appendUint(nil, fieldWho, uint64(e.Who))
		for _, c := range e.Hole {
			sub = appendSub(sub, fieldCards, encodeCard(c))
		}
		return appendSub(nil, fieldEventShowdownHand, sub)
	}
	return nil
}

func encodeError(se ServerError) []byte {
	var num protowire.Number
	switch se.Group {
	case ErrorGroupServer:
		num = fieldErrorServer
	case ErrorGroupGame:
		num = fieldErrorGame
	case ErrorGroupPlayerMgmt:
		num = fieldErrorPlayerMgmt
	default:
		return nil
	}
	// The oneof tag must be present even for code zero.
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(se.Code))
}

func encodeCard(c Card) []byte {
	b := appendUint(nil, fieldCardRank, uint64(c.Rank))
	return appendUint(b, fieldCardSuit, uint64(c.Suit))
}

func appendSub(b []byte, num protowire.Number, sub []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, sub)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}
