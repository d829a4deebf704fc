package game

// RoundState tracks one street of betting. CurrentBet is the table-wide
// to-amount a player must match; LastFullRaise is the size of the last
// full bet or raise increment and sets the minimum raise. Acted records
// which seats have acted since the last full raise; an aggressive action
// clears it so everyone else gets to respond.
type RoundState struct {
	CurrentBet        int64
	LastFullRaise     int64
	LastAggressorSeat int
	ReopenAvailable   bool
	Acted             []bool
}

func newRoundState(numSeats int, bigBlind int64) *RoundState {
	return &RoundState{
		CurrentBet:        0,
		LastFullRaise:     bigBlind,
		LastAggressorSeat: NoActionSeat,
		ReopenAvailable:   true,
		Acted:             make([]bool, numSeats),
	}
}

func (rs *RoundState) clearActed() {
	for i := range rs.Acted {
		rs.Acted[i] = false
	}
}

// actionPlan is the outcome of validating an action. Nothing is mutated
// until a plan exists; rejected actions leave the hand untouched.
type actionPlan struct {
	kind       ActionKind
	paid       int64 // chips moved from stack this action
	toAmount   int64 // street commitment after the action (wagers and calls)
	aggressive bool  // raises CurrentBet
	fullRaise  bool  // increment >= LastFullRaise
	raiseBy    int64 // increment over the previous CurrentBet
}

// validateAction checks an action against the round state without mutating
// anything. toAmount uses to-amount semantics: the player's total street
// commitment after the action.
func (rs *RoundState) validateAction(p *Player, street Street, kind ActionKind, toAmount int64, bigBlind int64) (actionPlan, error) {
	reject := func(rule string, min, max int64) (actionPlan, error) {
		return actionPlan{}, InvalidActionError{
			SeatNo:    p.SeatNo,
			Action:    kind,
			Amount:    toAmount,
			Rule:      rule,
			MinAmount: min,
			MaxAmount: max,
		}
	}
	maxTo := p.StreetBet + p.Stack

	switch kind {
	case ActionFold:
		return actionPlan{kind: kind}, nil

	case ActionCheck:
		if p.StreetBet < rs.CurrentBet {
			return reject("cannot check facing a bet", rs.CurrentBet, rs.CurrentBet)
		}
		return actionPlan{kind: kind, toAmount: p.StreetBet}, nil

	case ActionCall:
		if p.StreetBet >= rs.CurrentBet {
			return reject("nothing to call", 0, 0)
		}
		paid := rs.CurrentBet - p.StreetBet
		if paid > p.Stack {
			paid = p.Stack
		}
		return actionPlan{kind: kind, paid: paid, toAmount: p.StreetBet + paid}, nil

	case ActionBet:
		// Preflop the blinds set CurrentBet, so a first voluntary wager
		// arrives as a BET over the big blind; treat it as the raise it is.
		if rs.CurrentBet > 0 {
			if street == StreetPreflop && rs.LastAggressorSeat == NoActionSeat && toAmount > rs.CurrentBet {
				return rs.validateRaise(p, ActionBet, toAmount)
			}
			return reject("cannot bet facing a wager, raise instead", 0, 0)
		}
		if toAmount <= 0 {
			return reject("bet must be positive", bigBlind, maxTo)
		}
		if toAmount > maxTo {
			toAmount = maxTo
		}
		if toAmount < bigBlind && toAmount < maxTo {
			return reject("bet below the minimum", bigBlind, maxTo)
		}
		paid := toAmount - p.StreetBet
		plan := actionPlan{
			kind:       kind,
			paid:       paid,
			toAmount:   toAmount,
			aggressive: true,
			raiseBy:    toAmount,
			fullRaise:  toAmount >= bigBlind,
		}
		return plan, nil

	case ActionRaise:
		if rs.CurrentBet == 0 {
			return reject("nothing to raise, bet instead", 0, 0)
		}
		return rs.validateRaise(p, ActionRaise, toAmount)
	}
	return reject("unknown action", 0, 0)
}

func (rs *RoundState) validateRaise(p *Player, kind ActionKind, toAmount int64) (actionPlan, error) {
	reject := func(rule string, min, max int64) (actionPlan, error) {
		return actionPlan{}, InvalidActionError{
			SeatNo:    p.SeatNo,
			Action:    kind,
			Amount:    toAmount,
			Rule:      rule,
			MinAmount: min,
			MaxAmount: max,
		}
	}
	maxTo := p.StreetBet + p.Stack
	minTo := rs.CurrentBet + rs.LastFullRaise

	// A player who already acted on this street gets to raise again only
	// after a full raise behind them; short all-in raises do not reopen.
	if rs.Acted[p.SeatNo] {
		return reject("betting is not reopened, call or fold", 0, 0)
	}
	if toAmount > maxTo {
		toAmount = maxTo
	}
	if toAmount <= rs.CurrentBet {
		return reject("raise must exceed the current bet", minTo, maxTo)
	}
	increment := toAmount - rs.CurrentBet
	fullRaise := increment >= rs.LastFullRaise
	allIn := toAmount == maxTo
	if !fullRaise && !allIn {
		return reject("raise below the minimum", minTo, maxTo)
	}
	return actionPlan{
		kind:       kind,
		paid:       toAmount - p.StreetBet,
		toAmount:   toAmount,
		aggressive: true,
		fullRaise:  fullRaise,
		raiseBy:    increment,
	}, nil
}

// applyPlan mutates the round state for a validated plan. The actor's seat
// is always marked acted. A full bet or raise clears everyone else's acted
// flag, reopening the betting; a short all-in raise does not, so players
// who already acted can only call or fold.
func (rs *RoundState) applyPlan(seatNo int, plan actionPlan) {
	if plan.aggressive {
		rs.CurrentBet = plan.toAmount
		rs.LastAggressorSeat = seatNo
		if plan.fullRaise {
			rs.LastFullRaise = plan.raiseBy
			rs.ReopenAvailable = true
			rs.clearActed()
		} else {
			rs.ReopenAvailable = false
		}
	}
	rs.Acted[seatNo] = true
}
