package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Board used by tests that never reach showdown.
var dummyBoard = []string{"2h", "5c", "8d", "Jc", "Qd"}

func threeWayHand(t *testing.T) (*Table, *HandState) {
	t.Helper()
	table := newTestTable(t, []int64{1000, 1000, 1000})
	hole := map[int][]string{
		0: {"As", "Ks"},
		1: {"9h", "9d"},
		2: {"6c", "7s"},
	}
	hand := startScriptedHand(t, table, 0, hole, dummyBoard)
	return table, hand
}

func TestCheckFacingBetRejected(t *testing.T) {
	_, hand := threeWayHand(t)

	err := hand.ExecuteAction(0, ActionCheck, 0)
	iae, ok := err.(InvalidActionError)
	if !ok {
		t.Fatalf("expected InvalidActionError, got %v", err)
	}
	if iae.SeatNo != 0 || iae.Action != ActionCheck {
		t.Errorf("error fields wrong: %+v", iae)
	}
}

func TestCallWithNothingToCallRejected(t *testing.T) {
	_, hand := threeWayHand(t)
	act(t, hand, 0, ActionCall, 2)
	act(t, hand, 1, ActionCall, 2)
	act(t, hand, 2, ActionCheck, 0)

	// Flop, no wager yet: a call has nothing to match.
	err := hand.ExecuteAction(1, ActionCall, 0)
	if _, ok := err.(InvalidActionError); !ok {
		t.Fatalf("expected InvalidActionError, got %v", err)
	}
}

func TestBetBelowMinimumRejected(t *testing.T) {
	_, hand := threeWayHand(t)
	act(t, hand, 0, ActionCall, 2)
	act(t, hand, 1, ActionCall, 2)
	act(t, hand, 2, ActionCheck, 0)

	err := hand.ExecuteAction(1, ActionBet, 1)
	iae, ok := err.(InvalidActionError)
	if !ok {
		t.Fatalf("expected InvalidActionError, got %v", err)
	}
	if iae.MinAmount != 2 {
		t.Errorf("expected min amount 2 in error, got %d", iae.MinAmount)
	}
}

func TestRaiseBelowMinimumRejected(t *testing.T) {
	_, hand := threeWayHand(t)

	// Opening raise to 10 makes the minimum re-raise 18.
	act(t, hand, 0, ActionRaise, 10)
	err := hand.ExecuteAction(1, ActionRaise, 12)
	iae, ok := err.(InvalidActionError)
	if !ok {
		t.Fatalf("expected InvalidActionError, got %v", err)
	}
	if iae.MinAmount != 18 {
		t.Errorf("expected min raise-to of 18, got %d", iae.MinAmount)
	}
}

func TestOutOfTurnRejected(t *testing.T) {
	_, hand := threeWayHand(t)

	err := hand.ExecuteAction(2, ActionFold, 0)
	if _, ok := err.(NotPlayersTurnError); !ok {
		t.Fatalf("expected NotPlayersTurnError, got %v", err)
	}
}

func TestBetFacingWagerRejectedPostflop(t *testing.T) {
	_, hand := threeWayHand(t)
	act(t, hand, 0, ActionCall, 2)
	act(t, hand, 1, ActionCall, 2)
	act(t, hand, 2, ActionCheck, 0)

	act(t, hand, 1, ActionBet, 10)
	err := hand.ExecuteAction(2, ActionBet, 20)
	if _, ok := err.(InvalidActionError); !ok {
		t.Fatalf("expected InvalidActionError for bet facing a wager, got %v", err)
	}
	// The same amount expressed as a raise is fine.
	act(t, hand, 2, ActionRaise, 20)
}

// A rejected action must leave the hand exactly as it was.
func TestRejectedActionLeavesStateUnchanged(t *testing.T) {
	_, hand := threeWayHand(t)
	act(t, hand, 0, ActionRaise, 10)

	before := hand.Snapshot()
	if err := hand.ExecuteAction(1, ActionRaise, 12); err == nil {
		t.Fatal("expected raise below minimum to be rejected")
	}
	after := hand.Snapshot()
	if !cmp.Equal(before, after) {
		t.Errorf("state changed by rejected action: %s", cmp.Diff(before, after))
	}
}

// Short all-in raise: legal for a player who has not acted since the last
// full raise, but it does not reopen betting for those who have.
func TestShortAllInRaiseDoesNotReopen(t *testing.T) {
	table := newTestTable(t, []int64{14, 1000, 1000})
	hole := map[int][]string{
		0: {"As", "Ks"},
		1: {"9h", "9d"},
		2: {"6c", "7s"},
	}
	hand := startScriptedHand(t, table, 0, hole, dummyBoard)
	act(t, hand, 0, ActionCall, 2)
	act(t, hand, 1, ActionCall, 2)
	act(t, hand, 2, ActionCheck, 0)

	// Flop: seat 2 opens for 10 and seat 0's all-in raise to 12 is short
	// of the minimum raise to 20.
	act(t, hand, 1, ActionCheck, 0)
	act(t, hand, 2, ActionBet, 10)
	act(t, hand, 0, ActionRaise, 12)

	rs := hand.round
	if rs.ReopenAvailable {
		t.Error("short all-in raise should not leave betting reopened")
	}
	if rs.LastFullRaise != 10 {
		t.Errorf("short raise must not change the last full raise, got %d", rs.LastFullRaise)
	}
	if rs.CurrentBet != 12 {
		t.Errorf("current bet should be 12, got %d", rs.CurrentBet)
	}

	// Seat 1 only checked before the full bet, so it may still raise.
	// Seat 2 already bet and may only call or fold.
	act(t, hand, 1, ActionCall, 12)
	err := hand.ExecuteAction(2, ActionRaise, 30)
	if _, ok := err.(InvalidActionError); !ok {
		t.Fatalf("expected raise rejection after short all-in, got %v", err)
	}
	act(t, hand, 2, ActionCall, 12)

	if hand.CurrentStreet() != StreetTurn {
		t.Errorf("round should have advanced to the turn, got %s", hand.CurrentStreet())
	}
}

// A later full raise reopens the betting for everyone.
func TestFullRaiseReopensBetting(t *testing.T) {
	table := newTestTable(t, []int64{1000, 1000, 18})
	hole := map[int][]string{
		0: {"As", "Ks"},
		1: {"9h", "9d"},
		2: {"6c", "7s"},
	}
	hand := startScriptedHand(t, table, 0, hole, dummyBoard)
	act(t, hand, 0, ActionCall, 2)
	act(t, hand, 1, ActionCall, 2)
	act(t, hand, 2, ActionCheck, 0)

	// Seat 1 bets 10, seat 2 makes a short all-in raise to 16, seat 0
	// re-raises full. Now seat 1 may raise again.
	act(t, hand, 1, ActionBet, 10)
	act(t, hand, 2, ActionRaise, 16)
	if hand.round.ReopenAvailable {
		t.Fatal("betting should not be reopened after the short all-in")
	}
	act(t, hand, 0, ActionRaise, 26)
	if !hand.round.ReopenAvailable {
		t.Fatal("full raise should reopen the betting")
	}
	act(t, hand, 1, ActionRaise, 36)
	act(t, hand, 0, ActionCall, 36)

	if hand.CurrentStreet() != StreetTurn {
		t.Errorf("round should have advanced to the turn, got %s", hand.CurrentStreet())
	}
}
