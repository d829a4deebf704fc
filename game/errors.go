package game

import "fmt"

// ConfigurationError reports an invalid game or table setup.
type ConfigurationError struct {
	Msg string
}

func (e ConfigurationError) Error() string {
	return e.Msg
}

// InvalidActionError rejects a player action without mutating hand state.
// Rule names the constraint that was violated; MinAmount and MaxAmount are
// filled when a legal amount range exists for the attempted action.
type InvalidActionError struct {
	SeatNo    int
	Action    ActionKind
	Amount    int64
	Rule      string
	MinAmount int64
	MaxAmount int64
}

func (e InvalidActionError) Error() string {
	if e.MinAmount > 0 || e.MaxAmount > 0 {
		return fmt.Sprintf("seat %d: %s %d rejected: %s (allowed %d-%d)",
			e.SeatNo, e.Action, e.Amount, e.Rule, e.MinAmount, e.MaxAmount)
	}
	return fmt.Sprintf("seat %d: %s rejected: %s", e.SeatNo, e.Action, e.Rule)
}

// InvalidTransitionError reports an illegal hand state machine transition.
type InvalidTransitionError struct {
	From HandStatus
	To   HandStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid hand state transition %s -> %s", e.From, e.To)
}

// NotPlayersTurnError rejects an action from a seat that is not the
// current action seat.
type NotPlayersTurnError struct {
	SeatNo     int
	ActionSeat int
}

func (e NotPlayersTurnError) Error() string {
	return fmt.Sprintf("seat %d acted out of turn (action is on seat %d)", e.SeatNo, e.ActionSeat)
}
