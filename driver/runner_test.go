package driver

import (
	"io"
	"math/rand"
	"testing"

	"github.com/yeogirlyun/holdem-engine/game"
)

func newBotTable(t *testing.T, numPlayers int, buyIn int64) *game.Table {
	t.Helper()
	seats := make([]game.SeatPlayer, numPlayers)
	for i := 0; i < numPlayers; i++ {
		seats[i] = game.SeatPlayer{SeatNo: i, Name: "bot", BuyIn: buyIn}
	}
	table, err := game.NewTable(
		game.GameConfig{MaxSeats: 9, SmallBlind: 100, BigBlind: 200},
		seats,
		game.WithLogOutput(io.Discard),
		game.WithRandSource(rand.NewSource(42)),
	)
	if err != nil {
		t.Fatalf("creating table: %v", err)
	}
	return table
}

func TestBotRunnerConservesChips(t *testing.T) {
	const numPlayers = 6
	const buyIn = int64(20000)
	table := newBotTable(t, numPlayers, buyIn)

	sources := map[int]game.DecisionSource{
		0: NewAggressorBot(1, 0.5),
		1: CallingStationBot{},
		2: CallingStationBot{},
		3: FoldingBot{},
		4: NewAggressorBot(2, 0.3),
		5: CallingStationBot{},
	}
	runner := NewBotRunner(table, sources, WithBotLogOutput(io.Discard))
	if err := runner.Run(50); err != nil {
		t.Fatalf("bot runner failed: %v", err)
	}
	if runner.HandsPlayed == 0 {
		t.Fatal("no hands played")
	}

	var total int64
	for i := 0; i < numPlayers; i++ {
		p := table.PlayerAt(i)
		if p.Stack < 0 {
			t.Errorf("seat %d has negative stack %d", i, p.Stack)
		}
		total += p.Stack
	}
	if total != buyIn*numPlayers {
		t.Errorf("chips not conserved: want %d, got %d", buyIn*numPlayers, total)
	}
}

func TestBotRunnerPersistsHandState(t *testing.T) {
	table := newBotTable(t, 3, 20000)
	tracker := game.NewMemoryHandStateTracker()

	sources := map[int]game.DecisionSource{
		0: CallingStationBot{},
		1: CallingStationBot{},
		2: CallingStationBot{},
	}
	runner := NewBotRunner(table, sources,
		WithBotLogOutput(io.Discard),
		WithPersistence(tracker),
	)
	if err := runner.Run(3); err != nil {
		t.Fatalf("bot runner failed: %v", err)
	}

	// Finished hands leave no state behind.
	_, err := tracker.Load(table.GameCode())
	if _, ok := err.(game.HandStateNotFoundError); !ok {
		t.Errorf("expected HandStateNotFoundError after hands finished, got %v", err)
	}
}

func TestBotRunnerStopsWhenOnePlayerLeft(t *testing.T) {
	// Big blind 200 with tiny stacks busts players quickly.
	table := newBotTable(t, 2, 400)
	sources := map[int]game.DecisionSource{
		0: CallingStationBot{},
		1: CallingStationBot{},
	}
	runner := NewBotRunner(table, sources, WithBotLogOutput(io.Discard))
	if err := runner.Run(100); err != nil {
		t.Fatalf("bot runner failed: %v", err)
	}
	if runner.HandsPlayed == 100 {
		t.Error("runner should have stopped before 100 hands with 400-chip stacks")
	}
}
