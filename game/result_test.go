package game

import (
	"testing"
)

// Split pot with an odd chip: the first tied seat clockwise from the
// button gets the extra cent.
func TestSplitPotOddChip(t *testing.T) {
	table := newTestTable(t, []int64{100, 100, 100})
	hole := map[int][]string{
		0: {"Ah", "Kh"},
		1: {"As", "Ks"},
		2: {"2c", "7s"},
	}
	// Board plays for both ace-kings.
	hand := startScriptedHand(t, table, 0, hole, []string{"Qd", "Jd", "9c", "8h", "3s"})

	act(t, hand, 0, ActionRaise, 6)
	act(t, hand, 1, ActionCall, 6)
	act(t, hand, 2, ActionFold, 0)
	act(t, hand, 1, ActionBet, 3)
	act(t, hand, 0, ActionCall, 3)
	act(t, hand, 1, ActionCheck, 0)
	act(t, hand, 0, ActionCheck, 0)
	act(t, hand, 1, ActionCheck, 0)
	act(t, hand, 0, ActionCheck, 0)

	if !hand.Finished() {
		t.Fatalf("hand should be finished, status %s", hand.Status())
	}
	result := hand.Result()
	// 6+6+2 preflop plus 3+3 on the flop: pot 20 splits evenly.
	if got := result.TotalWon(0); got != 10 {
		t.Errorf("seat 0 should win 10, got %d", got)
	}
	if got := result.TotalWon(1); got != 10 {
		t.Errorf("seat 1 should win 10, got %d", got)
	}
	if got := totalStacks(table); got != 300 {
		t.Errorf("chips not conserved: want 300, got %d", got)
	}
}

// A folded small blind leaves an odd 13-chip pot. The tied winner left of
// the button takes the extra chip.
func TestSplitPotOddChipGoesClockwiseFromButton(t *testing.T) {
	table := newTestTable(t, []int64{100, 100, 100})
	hole := map[int][]string{
		0: {"Ah", "Kh"},
		1: {"2c", "7s"},
		2: {"As", "Ks"},
	}
	hand := startScriptedHand(t, table, 0, hole, []string{"Qd", "Jd", "9c", "8h", "3s"})

	act(t, hand, 0, ActionRaise, 6)
	act(t, hand, 1, ActionFold, 0)
	act(t, hand, 2, ActionCall, 6)
	act(t, hand, 2, ActionCheck, 0)
	act(t, hand, 0, ActionCheck, 0)
	act(t, hand, 2, ActionCheck, 0)
	act(t, hand, 0, ActionCheck, 0)
	act(t, hand, 2, ActionCheck, 0)
	act(t, hand, 0, ActionCheck, 0)

	result := hand.Result()
	if result == nil || !result.Showdown {
		t.Fatal("expected showdown result")
	}
	winners := result.Pots[0].Winners
	if len(winners) != 2 {
		t.Fatalf("expected a split pot, got %d winners", len(winners))
	}
	// Pot is 6+6+1 = 13. Seat 2 is the first winner clockwise from the
	// button and receives 7; seat 0 receives 6.
	if winners[0].SeatNo != 2 || winners[0].Amount != 7 {
		t.Errorf("first winner should be seat 2 with 7, got seat %d with %d",
			winners[0].SeatNo, winners[0].Amount)
	}
	if got := result.TotalWon(0); got != 6 {
		t.Errorf("seat 0 should receive 6, got %d", got)
	}
	if got := totalStacks(table); got != 300 {
		t.Errorf("chips not conserved: want 300, got %d", got)
	}
}

// Three-way all-in with 10/50/50: the short stack wins the 30 main pot,
// the better of the big stacks wins the 80 side pot.
func TestSidePotSettlement(t *testing.T) {
	table := newTestTable(t, []int64{10, 50, 50})
	hole := map[int][]string{
		0: {"Ah", "Ad"},
		1: {"Ks", "Kd"},
		2: {"2c", "2d"},
	}
	hand := startScriptedHand(t, table, 0, hole, []string{"Qs", "Jh", "9c", "3d", "3s"})

	act(t, hand, 0, ActionRaise, 10)
	act(t, hand, 1, ActionRaise, 50)
	act(t, hand, 2, ActionCall, 50)

	if !hand.Finished() {
		t.Fatalf("hand should have run out, status %s", hand.Status())
	}
	result := hand.Result()
	if len(result.Pots) != 2 {
		t.Fatalf("expected main and side pot, got %d", len(result.Pots))
	}
	if result.Pots[0].Pot != 30 || result.Pots[1].Pot != 80 {
		t.Errorf("pot sizes wrong: main %d side %d, want 30/80",
			result.Pots[0].Pot, result.Pots[1].Pot)
	}
	if got := result.TotalWon(0); got != 30 {
		t.Errorf("aces should win the 30 main pot, got %d", got)
	}
	if got := result.TotalWon(1); got != 80 {
		t.Errorf("kings should win the 80 side pot, got %d", got)
	}
	if got := result.TotalWon(2); got != 0 {
		t.Errorf("deuces should win nothing, got %d", got)
	}
	if got := totalStacks(table); got != 110 {
		t.Errorf("chips not conserved: want 110, got %d", got)
	}
}

// A bet called by a shorter all-in stack: the uncalled excess comes back.
func TestUncalledBetReturned(t *testing.T) {
	table := newTestTable(t, []int64{100, 40})
	hole := map[int][]string{
		0: {"2c", "7d"},
		1: {"Ah", "Ad"},
	}
	hand := startScriptedHand(t, table, 0, hole, []string{"Qs", "Jh", "9c", "3d", "3s"})

	act(t, hand, 0, ActionRaise, 100)
	act(t, hand, 1, ActionCall, 100)

	if !hand.Finished() {
		t.Fatalf("hand should have run out, status %s", hand.Status())
	}
	result := hand.Result()
	// Seat 1 could only cover 40; the other 60 returns to seat 0.
	if got := result.TotalWon(1); got != 80 {
		t.Errorf("aces should win 80, got %d", got)
	}
	if table.PlayerAt(0).Stack != 60 {
		t.Errorf("uncalled 60 should return to seat 0, got stack %d", table.PlayerAt(0).Stack)
	}
	if got := totalStacks(table); got != 140 {
		t.Errorf("chips not conserved: want 140, got %d", got)
	}
}

func TestResultBalances(t *testing.T) {
	table := newTestTable(t, []int64{100, 100})
	hole := map[int][]string{0: {"Ah", "Kh"}, 1: {"9s", "9d"}}
	hand := startScriptedHand(t, table, 0, hole, nil)
	act(t, hand, 0, ActionFold, 0)

	result := hand.Result()
	b0 := result.Balances[0]
	b1 := result.Balances[1]
	if b0.Before != 100 || b0.After != 99 {
		t.Errorf("seat 0 balance want 100->99, got %d->%d", b0.Before, b0.After)
	}
	if b1.Before != 100 || b1.After != 101 {
		t.Errorf("seat 1 balance want 100->101, got %d->%d", b1.Before, b1.After)
	}
}
