package protocol

// ErrorGroup says which part of the dealer reported an error.
type ErrorGroup int

const (
	ErrorGroupServer ErrorGroup = iota + 1
	ErrorGroupGame
	ErrorGroupPlayerMgmt
)

// ServerError is an error the dealer reported about this client's traffic.
// It never alters game state; sessions surface it to the local log only.
type ServerError struct {
	Group ErrorGroup
	Code  uint32
}

// Dealer error codes, per group. Zero is the unspecified sentinel in every
// group.
const (
	ServerErrTooManyClients uint32 = iota + 1
	ServerErrAllTablesFull
	ServerErrIllegalAction
)

const (
	GameErrInvalidAction uint32 = iota + 1
	GameErrHandInPlay
	GameErrNotEnoughPlayers
	GameErrInsufficientFunds
	GameErrBetTooLow
	GameErrOutOfTurn
	GameErrNoSuchPlayer
)

const (
	PlayerMgmtErrNotEnoughSeats uint32 = iota + 1
	PlayerMgmtErrInvalidID
	PlayerMgmtErrPlayerNotFound
	PlayerMgmtErrNoPlayers
)

var serverErrNames = map[uint32]string{
	ServerErrTooManyClients: "too_many_clients",
	ServerErrAllTablesFull:  "all_tables_full",
	ServerErrIllegalAction:  "illegal_action",
}

var gameErrNames = map[uint32]string{
	GameErrInvalidAction:     "invalid_action",
	GameErrHandInPlay:        "hand_in_play",
	GameErrNotEnoughPlayers:  "not_enough_players",
	GameErrInsufficientFunds: "insufficient_funds",
	GameErrBetTooLow:         "bet_too_low",
	GameErrOutOfTurn:         "out_of_turn",
	GameErrNoSuchPlayer:      "no_such_player",
}

var playerMgmtErrNames = map[uint32]string{
	PlayerMgmtErrNotEnoughSeats: "not_enough_seats",
	PlayerMgmtErrInvalidID:      "invalid_id",
	PlayerMgmtErrPlayerNotFound: "player_not_found",
	PlayerMgmtErrNoPlayers:      "no_players",
}

// String returns the dealer's name for the error code.
func (e ServerError) String() string {
	switch e.Group {
	case ErrorGroupServer:
		if name, ok := serverErrNames[e.Code]; ok {
			return name
		}
		return "unspecified_server_error"
	case ErrorGroupGame:
		if name, ok := gameErrNames[e.Code]; ok {
			return name
		}
		return "unspecified_game_error"
	case ErrorGroupPlayerMgmt:
		if name, ok := playerMgmtErrNames[e.Code]; ok {
			return name
		}
		return "unspecified_player_mgmt_error"
	default:
		return "unspecified_error"
	}
}
