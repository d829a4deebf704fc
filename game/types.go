package game

import (
	"fmt"
	"strings"
)

// ActionKind is the closed set of player actions the betting engine accepts.
type ActionKind int

const (
	ActionFold ActionKind = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
)

var actionKindNames = []string{"FOLD", "CHECK", "CALL", "BET", "RAISE"}

func (a ActionKind) String() string {
	if a < 0 || int(a) >= len(actionKindNames) {
		return fmt.Sprintf("ACTION(%d)", int(a))
	}
	return actionKindNames[a]
}

// ParseActionKind parses an action name as it appears in game scripts.
func ParseActionKind(s string) (ActionKind, error) {
	for i, name := range actionKindNames {
		if strings.EqualFold(s, name) {
			return ActionKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Street is a betting phase bounded by community-card reveals.
type Street int

const (
	StreetPreflop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
)

var streetNames = []string{"preflop", "flop", "turn", "river"}

func (s Street) String() string {
	if s < 0 || int(s) >= len(streetNames) {
		return fmt.Sprintf("street(%d)", int(s))
	}
	return streetNames[s]
}

// HandStatus is the state of the hand state machine.
type HandStatus int

const (
	StatusStartHand HandStatus = iota
	StatusPreflopBetting
	StatusDealFlop
	StatusFlopBetting
	StatusDealTurn
	StatusTurnBetting
	StatusDealRiver
	StatusRiverBetting
	StatusShowdown
	StatusEndHand
)

var handStatusNames = []string{
	"START_HAND",
	"PREFLOP_BETTING",
	"DEAL_FLOP",
	"FLOP_BETTING",
	"DEAL_TURN",
	"TURN_BETTING",
	"DEAL_RIVER",
	"RIVER_BETTING",
	"SHOWDOWN",
	"END_HAND",
}

func (s HandStatus) String() string {
	if s < 0 || int(s) >= len(handStatusNames) {
		return fmt.Sprintf("HandStatus(%d)", int(s))
	}
	return handStatusNames[s]
}

// IsBetting reports whether the status awaits player actions.
func (s HandStatus) IsBetting() bool {
	switch s {
	case StatusPreflopBetting, StatusFlopBetting, StatusTurnBetting, StatusRiverBetting:
		return true
	}
	return false
}

// Street returns the street a betting or dealing status belongs to.
func (s HandStatus) Street() Street {
	switch s {
	case StatusStartHand, StatusPreflopBetting:
		return StreetPreflop
	case StatusDealFlop, StatusFlopBetting:
		return StreetFlop
	case StatusDealTurn, StatusTurnBetting:
		return StreetTurn
	default:
		return StreetRiver
	}
}

// NoActionSeat is the ActionSeat value while no player action is pending
// (dealing states, showdown, finished hands).
const NoActionSeat = -1

// GameConfig is the validated table setup. All chip amounts are int64 cents.
type GameConfig struct {
	GameCode   string // generated when empty
	MaxSeats   int
	SmallBlind int64
	BigBlind   int64
}

func (c GameConfig) validate() error {
	if c.MaxSeats < 2 || c.MaxSeats > 9 {
		return ConfigurationError{Msg: fmt.Sprintf("max seats must be between 2 and 9, got %d", c.MaxSeats)}
	}
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return ConfigurationError{Msg: fmt.Sprintf("blinds must be positive, got %d/%d", c.SmallBlind, c.BigBlind)}
	}
	if c.SmallBlind >= c.BigBlind {
		return ConfigurationError{Msg: fmt.Sprintf("small blind %d must be less than big blind %d", c.SmallBlind, c.BigBlind)}
	}
	return nil
}

// SeatPlayer names a player taking a seat at table construction.
type SeatPlayer struct {
	SeatNo int
	Name   string
	BuyIn  int64
}

// Decision is what a DecisionSource returns: an action and, for wagers,
// the to-amount (total street commitment after the action).
type Decision struct {
	Action   ActionKind
	ToAmount int64
}

// DecisionSource supplies actions for seats it controls. The second return
// value is false when no decision is available, which stops autonomous play.
type DecisionSource interface {
	GetDecision(seatNo int, snapshot *GameStateSnapshot) (Decision, bool)
}
