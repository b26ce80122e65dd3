package session

import (
	"fmt"
	"strconv"
	"strings"

	"pokerclient/internal/game"
)

// Intent is one parsed line of local input: either a quit request or a
// candidate action for the gate.
type Intent struct {
	Quit bool
	Act  game.Intent
}

// ParseIntent turns an input line into an intent. Understood forms:
// "fold", "call", "check", "bet <amount>", "quit"/"exit".
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Intent{}, fmt.Errorf("empty input")
	}
	switch fields[0] {
	case "quit", "exit":
		return Intent{Quit: true}, nil
	case "fold":
		return Intent{Act: game.Intent{Kind: game.IntentFold}}, nil
	case "call", "check":
		return Intent{Act: game.Intent{Kind: game.IntentCall}}, nil
	case "bet", "raise":
		if len(fields) < 2 {
			return Intent{}, fmt.Errorf("bet needs an amount, e.g. \"bet 50\"")
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil || amount < 0 {
			return Intent{}, fmt.Errorf("bad bet amount %q", fields[1])
		}
		return Intent{Act: game.Intent{Kind: game.IntentBet, Amount: amount}}, nil
	default:
		return Intent{}, fmt.Errorf("unknown command %q (try fold, call, bet <n>, quit)", fields[0])
	}
}
