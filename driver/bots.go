package driver

import (
	"math/rand"

	"github.com/yeogirlyun/holdem-engine/game"
)

// CallingStationBot checks when it can and calls everything else. It never
// initiates a wager, which keeps bot-vs-bot hands short.
type CallingStationBot struct{}

func (CallingStationBot) GetDecision(seatNo int, snapshot *game.GameStateSnapshot) (game.Decision, bool) {
	var me *game.PlayerSnapshot
	for _, p := range snapshot.Players {
		if p.SeatNo == seatNo {
			me = p
			break
		}
	}
	if me == nil {
		return game.Decision{}, false
	}
	if me.StreetBet >= snapshot.CurrentBet {
		return game.Decision{Action: game.ActionCheck}, true
	}
	return game.Decision{Action: game.ActionCall}, true
}

// FoldingBot folds to any bet and otherwise checks.
type FoldingBot struct{}

func (FoldingBot) GetDecision(seatNo int, snapshot *game.GameStateSnapshot) (game.Decision, bool) {
	var me *game.PlayerSnapshot
	for _, p := range snapshot.Players {
		if p.SeatNo == seatNo {
			me = p
			break
		}
	}
	if me == nil {
		return game.Decision{}, false
	}
	if me.StreetBet >= snapshot.CurrentBet {
		return game.Decision{Action: game.ActionCheck}, true
	}
	return game.Decision{Action: game.ActionFold}, true
}

// AggressorBot raises or bets a fixed multiple of the big blind with some
// probability, otherwise plays like a calling station. Used to exercise
// raise and side-pot paths in autonomous runs.
type AggressorBot struct {
	Rand      *rand.Rand
	Frequency float64 // chance of wagering when possible, 0..1
}

func NewAggressorBot(seed int64, frequency float64) *AggressorBot {
	return &AggressorBot{
		Rand:      rand.New(rand.NewSource(seed)),
		Frequency: frequency,
	}
}

func (b *AggressorBot) GetDecision(seatNo int, snapshot *game.GameStateSnapshot) (game.Decision, bool) {
	var me *game.PlayerSnapshot
	for _, p := range snapshot.Players {
		if p.SeatNo == seatNo {
			me = p
			break
		}
	}
	if me == nil {
		return game.Decision{}, false
	}
	wager := b.Rand.Float64() < b.Frequency
	if wager && me.Stack > 0 {
		if snapshot.CurrentBet == 0 {
			amount := 2 * snapshot.BigBlind
			return game.Decision{Action: game.ActionBet, ToAmount: amount}, true
		}
		if me.StreetBet+me.Stack > snapshot.MinRaiseTo {
			return game.Decision{Action: game.ActionRaise, ToAmount: snapshot.MinRaiseTo}, true
		}
	}
	if me.StreetBet >= snapshot.CurrentBet {
		return game.Decision{Action: game.ActionCheck}, true
	}
	return game.Decision{Action: game.ActionCall}, true
}
