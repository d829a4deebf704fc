package game

import (
	"github.com/rs/zerolog"

	"github.com/yeogirlyun/holdem-engine/logging"
	"github.com/yeogirlyun/holdem-engine/poker"
)

// handStateTransitions is the legal edge set of the hand state machine.
var handStateTransitions = map[HandStatus][]HandStatus{
	StatusStartHand:      {StatusPreflopBetting},
	StatusPreflopBetting: {StatusDealFlop, StatusEndHand},
	StatusDealFlop:       {StatusFlopBetting, StatusEndHand},
	StatusFlopBetting:    {StatusDealTurn, StatusEndHand},
	StatusDealTurn:       {StatusTurnBetting, StatusEndHand},
	StatusTurnBetting:    {StatusDealRiver, StatusEndHand},
	StatusDealRiver:      {StatusRiverBetting, StatusEndHand},
	StatusRiverBetting:   {StatusShowdown, StatusEndHand},
	StatusShowdown:       {StatusEndHand},
	StatusEndHand:        {},
}

// HandState runs one hand from blinds to settlement. All mutation funnels
// through ExecuteAction; dealing and street advancement happen internally
// when a betting round completes.
type HandState struct {
	table      *Table
	gameCode   string
	handNum    uint32
	status     HandStatus
	buttonSeat int
	sbSeat     int
	bbSeat     int
	actionSeat int

	deck         *poker.Deck
	board        []poker.Card
	committedPot int64
	round        *RoundState
	players      []*Player // seat-indexed view shared with the table

	balancesBefore map[int]int64
	wonAt          HandStatus
	result         *HandResult

	preflopActions *HandActionLog
	flopActions    *HandActionLog
	turnActions    *HandActionLog
	riverActions   *HandActionLog

	logger *zerolog.Logger
}

// HandOption configures a single hand at start.
type HandOption func(*handSetup)

type handSetup struct {
	deck       *poker.Deck
	buttonSeat int
}

// WithDeck deals the hand from the given deck instead of a fresh shuffle.
// Scripted decks make hands fully deterministic.
func WithDeck(deck *poker.Deck) HandOption {
	return func(s *handSetup) { s.deck = deck }
}

// WithButton forces the dealer button to the given seat for this hand.
func WithButton(seatNo int) HandOption {
	return func(s *handSetup) { s.buttonSeat = seatNo }
}

// StartHand posts blinds, deals hole cards and opens preflop betting.
// It fails if a hand is already in progress or fewer than two seated
// players have chips.
func (t *Table) StartHand(opts ...HandOption) (*HandState, error) {
	if t.hand != nil && !t.hand.Finished() {
		return nil, ConfigurationError{Msg: "a hand is already in progress"}
	}
	setup := handSetup{buttonSeat: -1}
	for _, opt := range opts {
		opt(&setup)
	}

	if setup.buttonSeat >= 0 {
		if p := t.PlayerAt(setup.buttonSeat); p == nil || p.Stack <= 0 {
			return nil, ConfigurationError{Msg: "button seat is empty or busted"}
		}
		t.buttonSeat = setup.buttonSeat
	} else if err := t.moveButton(); err != nil {
		return nil, err
	}

	inhandCount := 0
	for _, p := range t.seats {
		if p == nil {
			continue
		}
		p.resetForNewHand()
		if p.Inhand {
			inhandCount++
		}
	}
	if inhandCount < 2 {
		return nil, ConfigurationError{Msg: "need at least 2 players with chips to start a hand"}
	}

	deck := setup.deck
	if deck == nil {
		deck = poker.NewDeck(t.randSource)
	}

	t.handNum++
	h := &HandState{
		table:          t,
		gameCode:       t.cfg.GameCode,
		handNum:        t.handNum,
		status:         StatusStartHand,
		buttonSeat:     t.buttonSeat,
		actionSeat:     NoActionSeat,
		deck:           deck,
		players:        t.seats,
		balancesBefore: make(map[int]int64),
		preflopActions: newHandActionLog(),
		flopActions:    newHandActionLog(),
		turnActions:    newHandActionLog(),
		riverActions:   newHandActionLog(),
		logger:         t.logger,
	}
	for _, p := range t.seats {
		if p != nil {
			h.balancesBefore[p.SeatNo] = p.Stack
		}
	}

	t.assignPositions(h.buttonSeat)
	h.sbSeat, h.bbSeat = t.blindSeats(h.buttonSeat, inhandCount)

	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}
	h.postBlinds()

	if err := h.transitionTo(StatusPreflopBetting); err != nil {
		return nil, err
	}
	h.actionSeat = h.firstToActPreflop()
	t.hand = h

	h.logger.Info().
		Str(logging.GameCodeKey, h.gameCode).
		Uint32(logging.HandNumKey, h.handNum).
		Int("button", h.buttonSeat).
		Int("sb", h.sbSeat).
		Int("bb", h.bbSeat).
		Msg("hand started")
	h.emitHandStarted()

	// Both blinds can be all-in from posting; run the board out if nobody
	// has a decision left.
	if h.roundComplete() {
		if err := h.advanceStreet(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// dealHoleCards gives two consecutive cards to each in-hand seat, in seat
// order starting left of the button.
func (h *HandState) dealHoleCards() error {
	n := len(h.players)
	for i := 1; i <= n; i++ {
		p := h.players[(h.buttonSeat+i)%n]
		if p == nil || !p.Inhand {
			continue
		}
		cards, err := h.deck.Draw(2)
		if err != nil {
			return err
		}
		p.HoleCards = cards
	}
	return nil
}

// postBlinds makes the forced wagers. Short stacks post what they have and
// are all-in; the nominal big blind still governs the amount to call.
func (h *HandState) postBlinds() {
	cfg := h.table.cfg
	h.round = newRoundState(len(h.players), cfg.BigBlind)

	sb := h.players[h.sbSeat]
	bb := h.players[h.bbSeat]
	sb.wager(cfg.SmallBlind)
	bb.wager(cfg.BigBlind)
	h.round.CurrentBet = cfg.BigBlind

	h.preflopActions.PotStart = 0
}

// firstToActPreflop is the first seat with a decision after the big blind.
// Heads-up that is the button.
func (h *HandState) firstToActPreflop() int {
	return h.table.nextSeatWith(h.bbSeat, (*Player).CanAct)
}

// Status returns the current state machine status.
func (h *HandState) Status() HandStatus {
	return h.status
}

// Finished reports whether the hand has settled.
func (h *HandState) Finished() bool {
	return h.status == StatusEndHand
}

// ActionSeat returns the seat due to act, or NoActionSeat.
func (h *HandState) ActionSeat() int {
	return h.actionSeat
}

// Board returns the community cards dealt so far.
func (h *HandState) Board() []poker.Card {
	return h.board
}

// Result returns the settlement, or nil while the hand is running.
func (h *HandState) Result() *HandResult {
	return h.result
}

// CurrentStreet returns the street in play.
func (h *HandState) CurrentStreet() Street {
	return h.status.Street()
}

// HandNum returns the table-scoped hand number.
func (h *HandState) HandNum() uint32 {
	return h.handNum
}

func (h *HandState) transitionTo(next HandStatus) error {
	for _, allowed := range handStateTransitions[h.status] {
		if allowed == next {
			h.status = next
			return nil
		}
	}
	return InvalidTransitionError{From: h.status, To: next}
}

// ExecuteAction is the single entry point for player actions. Invalid
// actions are rejected with a typed error and leave the hand unchanged.
func (h *HandState) ExecuteAction(seatNo int, kind ActionKind, toAmount int64) error {
	if !h.status.IsBetting() {
		return InvalidActionError{SeatNo: seatNo, Action: kind, Amount: toAmount,
			Rule: "no action pending in state " + h.status.String()}
	}
	if seatNo != h.actionSeat {
		return NotPlayersTurnError{SeatNo: seatNo, ActionSeat: h.actionSeat}
	}
	p := h.players[seatNo]

	plan, err := h.round.validateAction(p, h.CurrentStreet(), kind, toAmount, h.table.cfg.BigBlind)
	if err != nil {
		h.logger.Warn().
			Str(logging.GameCodeKey, h.gameCode).
			Uint32(logging.HandNumKey, h.handNum).
			Int(logging.SeatNumKey, seatNo).
			Str(logging.ActionKey, kind.String()).
			Int64(logging.AmountKey, toAmount).
			Err(err).
			Msg("action rejected")
		return err
	}

	if plan.kind == ActionFold {
		p.Folded = true
	} else if plan.paid > 0 {
		p.wager(plan.paid)
	}
	h.round.applyPlan(seatNo, plan)

	entry := &HandAction{
		SeatNo: seatNo,
		Action: kind.String(),
		Amount: plan.toAmount,
		Stack:  p.Stack,
	}
	h.actionLog().Actions = append(h.actionLog().Actions, entry)

	h.logger.Info().
		Str(logging.GameCodeKey, h.gameCode).
		Uint32(logging.HandNumKey, h.handNum).
		Str(logging.StreetKey, h.CurrentStreet().String()).
		Int(logging.SeatNumKey, seatNo).
		Str(logging.ActionKey, kind.String()).
		Int64(logging.AmountKey, plan.toAmount).
		Msg("action applied")
	h.emitActionApplied(entry)

	if h.roundComplete() {
		return h.advanceStreet()
	}
	h.actionSeat = h.table.nextSeatWith(seatNo, (*Player).CanAct)
	return nil
}

// actionLog returns the log for the street in play.
func (h *HandState) actionLog() *HandActionLog {
	switch h.CurrentStreet() {
	case StreetPreflop:
		return h.preflopActions
	case StreetFlop:
		return h.flopActions
	case StreetTurn:
		return h.turnActions
	default:
		return h.riverActions
	}
}

func (h *HandState) contenderCount() int {
	n := 0
	for _, p := range h.players {
		if p != nil && p.InContention() {
			n++
		}
	}
	return n
}

func (h *HandState) actionableCount() int {
	n := 0
	for _, p := range h.players {
		if p != nil && p.CanAct() {
			n++
		}
	}
	return n
}

// roundComplete is the street-closing predicate. The round is over when at
// most one player is in contention, when nobody can act, or when every
// actionable player has matched the current bet and acted since the last
// full raise. Blinds do not count as having acted, which is what gives the
// big blind the preflop option.
func (h *HandState) roundComplete() bool {
	if h.contenderCount() <= 1 {
		return true
	}
	for _, p := range h.players {
		if p == nil || !p.CanAct() {
			continue
		}
		if p.StreetBet != h.round.CurrentBet {
			return false
		}
		if !h.round.Acted[p.SeatNo] {
			return false
		}
	}
	return true
}

// settleStreetBets moves all street bets into the committed pot.
func (h *HandState) settleStreetBets() {
	for _, p := range h.players {
		if p == nil {
			continue
		}
		h.committedPot += p.StreetBet
		p.StreetBet = 0
	}
}

// advanceStreet closes the finished betting round: settle bets, then
// either end the hand, go to showdown, or deal the next street. When fewer
// than two players can still act, the remaining board runs out with no
// further betting.
func (h *HandState) advanceStreet() error {
	h.settleStreetBets()

	if h.contenderCount() <= 1 {
		return h.finishHand()
	}

	if h.status == StatusRiverBetting {
		if err := h.transitionTo(StatusShowdown); err != nil {
			return err
		}
		return h.finishHand()
	}

	dealStatus := map[HandStatus]HandStatus{
		StatusPreflopBetting: StatusDealFlop,
		StatusFlopBetting:    StatusDealTurn,
		StatusTurnBetting:    StatusDealRiver,
	}[h.status]
	if err := h.transitionTo(dealStatus); err != nil {
		return err
	}
	if err := h.dealBoardCards(dealStatus); err != nil {
		return err
	}

	if h.actionableCount() < 2 {
		// All-in runout: reveal the rest of the board, then settle.
		for remaining := dealStatus; remaining != StatusDealRiver; {
			next := StatusDealRiver
			if remaining == StatusDealFlop {
				next = StatusDealTurn
			}
			if err := h.dealBoardCards(next); err != nil {
				return err
			}
			remaining = next
		}
		return h.finishHand()
	}

	h.round = newRoundState(len(h.players), h.table.cfg.BigBlind)
	h.actionLogForStatus(dealStatus).PotStart = h.committedPot
	if err := h.transitionTo(bettingStatusAfter(dealStatus)); err != nil {
		return err
	}
	h.actionSeat = h.table.nextSeatWith(h.buttonSeat, (*Player).CanAct)
	return nil
}

func bettingStatusAfter(dealStatus HandStatus) HandStatus {
	switch dealStatus {
	case StatusDealFlop:
		return StatusFlopBetting
	case StatusDealTurn:
		return StatusTurnBetting
	default:
		return StatusRiverBetting
	}
}

func (h *HandState) actionLogForStatus(dealStatus HandStatus) *HandActionLog {
	switch dealStatus {
	case StatusDealFlop:
		return h.flopActions
	case StatusDealTurn:
		return h.turnActions
	default:
		return h.riverActions
	}
}

// dealBoardCards draws the community cards for a dealing state: three for
// the flop, one for the turn and river.
func (h *HandState) dealBoardCards(dealStatus HandStatus) error {
	n := 1
	if dealStatus == StatusDealFlop {
		n = 3
	}
	cards, err := h.deck.Draw(n)
	if err != nil {
		return err
	}
	h.board = append(h.board, cards...)
	h.logger.Info().
		Str(logging.GameCodeKey, h.gameCode).
		Uint32(logging.HandNumKey, h.handNum).
		Str(logging.StreetKey, dealStatus.Street().String()).
		Str("cards", poker.CardsToString(cards)).
		Msg("board dealt")
	h.emitStreetDealt(dealStatus.Street(), cards)
	return nil
}

// finishHand settles the pot and closes the state machine. Street bets
// must already be consolidated.
func (h *HandState) finishHand() error {
	h.actionSeat = NoActionSeat

	var result *HandResult
	if h.contenderCount() <= 1 {
		h.wonAt = h.status
		result = h.settleUncontested()
	} else {
		h.wonAt = StatusShowdown
		result = h.settleShowdown()
	}
	if err := h.transitionTo(StatusEndHand); err != nil {
		return err
	}
	h.result = result
	h.committedPot = 0

	h.logger.Info().
		Str(logging.GameCodeKey, h.gameCode).
		Uint32(logging.HandNumKey, h.handNum).
		Str("won_at", h.wonAt.String()).
		Msg("hand finished")
	h.emitHandFinished(result)
	return nil
}

// seatsClockwiseFromButton orders the given seats by distance clockwise
// from the seat after the button. Odd chips go to the earliest seat in
// this order.
func (h *HandState) seatsClockwiseFromButton(seats []int) []int {
	n := len(h.players)
	ordered := make([]int, len(seats))
	copy(ordered, seats)
	dist := func(seat int) int {
		return ((seat - h.buttonSeat - 1) + n) % n
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && dist(ordered[j]) < dist(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}
