// Package view renders the table state to the terminal with pterm.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"pokerclient/internal/game"
	"pokerclient/pkg/protocol"
)

// Render draws the whole table: opponents on top, the board in the
// middle, our own seat and the activity log at the bottom.
func Render(st game.State) {
	var opponents []pterm.Panel
	for _, id := range seatOrder(st) {
		if st.SelfKnown && id == st.SelfID {
			continue
		}
		opponents = append(opponents, pterm.Panel{Data: playerInfo(st, id)})
	}

	bottom := []pterm.Panel{{Data: selfInfo(st)}}
	if log := logInfo(st); log != "" {
		bottom = append(bottom, pterm.Panel{Data: log})
	}

	rows := [][]pterm.Panel{}
	if len(opponents) > 0 {
		rows = append(rows, opponents)
	}
	rows = append(rows, []pterm.Panel{{Data: boardInfo(st)}}, bottom)

	pterm.DefaultPanel.WithPanels(rows).Render()
}

// seatOrder returns player ids sorted ascending so the layout does not
// jump around between frames.
func seatOrder(st game.State) []protocol.PlayerID {
	ids := make([]protocol.PlayerID, 0, len(st.Players))
	for id := range st.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func playerInfo(st game.State, id protocol.PlayerID) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := fmt.Sprintf("Player %d", id)
	if st.TurnKnown && st.Turn == id {
		title = pterm.LightYellow(title + " *")
	}
	lines := fmt.Sprintf("Chips: %d\nBet: %d", st.Players[id], st.ActiveBets[id])
	if hole, ok := st.Showdown[id]; ok {
		lines += "\n" + pterm.BgGreen.Sprint(cardsLine(hole))
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s", lines)
}

func selfInfo(st game.State) string {
	pbox := pterm.DefaultBox.WithLeftPadding(10).WithRightPadding(10).WithTopPadding(1).WithBottomPadding(1)
	if !st.SelfKnown {
		return pbox.WithTitle("You").WithTitleTopLeft().Sprint(pterm.Gray("waiting for a seat"))
	}

	title := fmt.Sprintf("You (Player %d)", st.SelfID)
	if st.TurnKnown && st.Turn == st.SelfID {
		title = pterm.LightYellow(title + " *")
	}
	lines := fmt.Sprintf("Chips: %d\nBet: %d", st.OwnChips(), st.ActiveBets[st.SelfID])
	if len(st.Hole) > 0 {
		lines += "\n" + pterm.BgGreen.Sprint(cardsLine(st.Hole))
	}
	if desc, ok := st.DescribeHand(); ok {
		lines += "\n" + pterm.LightCyan(desc)
	}
	if call := st.CallAmount(); call > 0 {
		lines += fmt.Sprintf("\nTo call: %d", call)
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s", lines)
}

func boardInfo(st game.State) string {
	board := cardsLine(st.Board)
	if board == "" {
		board = "no cards yet"
	}
	return pterm.BgGreen.Sprintf("\n %s | Pot: %d | %s \n", board, st.Pot, st.Phase)
}

func logInfo(st game.State) string {
	if len(st.RecentLog) == 0 {
		return ""
	}
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(strings.Join(st.RecentLog, "\n"))
}

func cardsLine(cards []protocol.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " - ")
}
