package game

import (
	"fmt"
	"io"
	"testing"

	"github.com/yeogirlyun/holdem-engine/poker"
)

// newTestTable seats one player per entry; stacks[i] is seat i's buy-in.
func newTestTable(t *testing.T, stacks []int64, opts ...TableOption) *Table {
	t.Helper()
	var seats []SeatPlayer
	for i, stack := range stacks {
		seats = append(seats, SeatPlayer{
			SeatNo: i,
			Name:   fmt.Sprintf("p%d", i),
			BuyIn:  stack,
		})
	}
	opts = append([]TableOption{WithLogOutput(io.Discard)}, opts...)
	table, err := NewTable(GameConfig{
		GameCode:   "test-game",
		MaxSeats:   9,
		SmallBlind: 1,
		BigBlind:   2,
	}, seats, opts...)
	if err != nil {
		t.Fatalf("creating table: %v", err)
	}
	return table
}

// startScriptedHand deals the named hole cards and board. holeCards maps
// seat number to two tokens; every in-hand seat must have an entry.
func startScriptedHand(t *testing.T, table *Table, button int, holeCards map[int][]string, board []string) *HandState {
	t.Helper()
	var tokens []string
	n := table.Config().MaxSeats
	for i := 1; i <= n; i++ {
		seatNo := (button + i) % n
		if cards, ok := holeCards[seatNo]; ok {
			tokens = append(tokens, cards...)
		}
	}
	tokens = append(tokens, board...)
	prefix, err := poker.ParseCards(tokens)
	if err != nil {
		t.Fatalf("parsing scripted cards: %v", err)
	}
	deck, err := poker.NewScriptedDeck(prefix)
	if err != nil {
		t.Fatalf("building scripted deck: %v", err)
	}
	hand, err := table.StartHand(WithDeck(deck), WithButton(button))
	if err != nil {
		t.Fatalf("starting hand: %v", err)
	}
	return hand
}

// act fails the test if the action is rejected.
func act(t *testing.T, hand *HandState, seatNo int, kind ActionKind, toAmount int64) {
	t.Helper()
	if err := hand.ExecuteAction(seatNo, kind, toAmount); err != nil {
		t.Fatalf("seat %d %s %d rejected: %v", seatNo, kind, toAmount, err)
	}
}

// totalStacks sums every seated player's stack. After a finished hand it
// must equal the sum of buy-ins.
func totalStacks(table *Table) int64 {
	var total int64
	for i := 0; i < table.Config().MaxSeats; i++ {
		p := table.PlayerAt(i)
		if p == nil {
			continue
		}
		total += p.Stack
	}
	return total
}
