package protocol

// PlayerID identifies a player. The dealer assigns ids; the client learns
// its own id from the first DealtHole event that carries cards.
type PlayerID uint32

// Event is one fact asserted by the dealer about game progress.
// The set of variants is closed: reducers switch over it exhaustively and
// treat anything else (including nil, from an unrecognized wire tag) as a
// no-op.
type Event interface {
	isEvent()
}

// PlayerAdded reports that a player was seated at the table.
type PlayerAdded struct {
	Who PlayerID
}

// PlayerRemoved reports that a player left the table.
type PlayerRemoved struct {
	Who PlayerID
}

// PlayerChips reports a player's current chip count.
type PlayerChips struct {
	Who   PlayerID
	Chips int
}

// HandStarted reports that a new hand began. It resets all per-hand state.
type HandStarted struct{}

// PhaseAdvanced reports that the hand moved to the next betting phase.
type PhaseAdvanced struct {
	Next Phase
}

// DealtHole reports hole cards dealt to a player. The dealer only includes
// the cards themselves for the addressee; for everyone else Hole is empty.
type DealtHole struct {
	Who  PlayerID
	Hole []Card
}

// DealtFlop reports the three flop cards.
type DealtFlop struct {
	Flop []Card
}

// DealtStreet reports one more community card (turn or river).
type DealtStreet struct {
	Street Card
}

// BetPlaced reports chips committed by a player in the current phase.
type BetPlaced struct {
	Who    PlayerID
	Amount int
}

// TurnAdvanced reports which player acts next.
type TurnAdvanced struct {
	Next PlayerID
}

// WonPot reports chips awarded from the pot.
type WonPot struct {
	Who    PlayerID
	Amount int
}

// ShowdownHand reports a player's revealed hole cards at showdown.
type ShowdownHand struct {
	Who  PlayerID
	Hole []Card
}

func (PlayerAdded) isEvent()   {}
func (PlayerRemoved) isEvent() {}
func (PlayerChips) isEvent()   {}
func (HandStarted) isEvent()   {}
func (PhaseAdvanced) isEvent() {}
func (DealtHole) isEvent()     {}
func (DealtFlop) isEvent()     {}
func (DealtStreet) isEvent()   {}
func (BetPlaced) isEvent()     {}
func (TurnAdvanced) isEvent()  {}
func (WonPot) isEvent()        {}
func (ShowdownHand) isEvent()  {}

// Action is an intent the client submits to the dealer.
type Action interface {
	isAction()
}

// Fold gives up the hand.
type Fold struct{}

// Bet commits chips. A call or check is a Bet whose amount equals the
// outstanding call delta, possibly zero.
type Bet struct {
	Amount int
}

func (Fold) isAction() {}
func (Bet) isAction()  {}
