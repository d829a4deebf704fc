package game

import (
	"github.com/yeogirlyun/holdem-engine/poker"
)

// Player is a seated player. Chip fields are int64 cents. StreetBet is the
// amount committed on the current street; TotalInvested accumulates across
// streets and feeds pot construction.
type Player struct {
	SeatNo        int
	Name          string
	Position      string
	Stack         int64
	StreetBet     int64
	TotalInvested int64
	Inhand        bool
	Folded        bool
	AllIn         bool
	HoleCards     []poker.Card
}

// CanAct reports whether the player has a pending voluntary decision:
// dealt in, not folded, not all-in.
func (p *Player) CanAct() bool {
	return p.Inhand && !p.Folded && !p.AllIn
}

// InContention reports whether the player can still win a pot.
func (p *Player) InContention() bool {
	return p.Inhand && !p.Folded
}

func (p *Player) resetForNewHand() {
	p.Position = ""
	p.StreetBet = 0
	p.TotalInvested = 0
	p.Folded = false
	p.AllIn = false
	p.HoleCards = nil
	p.Inhand = p.Stack > 0
}

// wager moves chips from the stack to the street bet, capped at the stack.
// Returns the amount actually paid.
func (p *Player) wager(amount int64) int64 {
	if amount > p.Stack {
		amount = p.Stack
	}
	p.Stack -= amount
	p.StreetBet += amount
	p.TotalInvested += amount
	if p.Stack == 0 {
		p.AllIn = true
	}
	return amount
}
