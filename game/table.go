package game

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yeogirlyun/holdem-engine/logging"
	"github.com/yeogirlyun/holdem-engine/poker"
)

// positionNamesBySize maps occupied-seat count to position labels, assigned
// clockwise starting at the button.
var positionNamesBySize = map[int][]string{
	2: {"BTN", "BB"},
	3: {"BTN", "SB", "BB"},
	4: {"BTN", "SB", "BB", "UTG"},
	5: {"BTN", "SB", "BB", "UTG", "CO"},
	6: {"BTN", "SB", "BB", "UTG", "MP", "CO"},
	7: {"BTN", "SB", "BB", "UTG", "MP", "HJ", "CO"},
	8: {"BTN", "SB", "BB", "UTG", "UTG+1", "MP", "HJ", "CO"},
	9: {"BTN", "SB", "BB", "UTG", "UTG+1", "MP", "LJ", "HJ", "CO"},
}

// Table owns the seat arena, the dealer button, and the lifecycle of hands.
// It is not safe for concurrent use; callers serialize access the way a
// per-game message loop would.
type Table struct {
	cfg        GameConfig
	seats      []*Player // indexed by seat number, nil for open seats
	buttonSeat int
	handNum    uint32
	hand       *HandState
	evaluator  HandEvaluator
	sinks      []EventSink
	randSource rand.Source
	logger     *zerolog.Logger
}

// TableOption configures a Table at construction.
type TableOption func(*Table)

// WithEvaluator replaces the default hand strength evaluator.
func WithEvaluator(e HandEvaluator) TableOption {
	return func(t *Table) { t.evaluator = e }
}

// WithEventSink registers a sink for hand lifecycle events. May be given
// multiple times.
func WithEventSink(s EventSink) TableOption {
	return func(t *Table) { t.sinks = append(t.sinks, s) }
}

// WithRandSource sets the source used to shuffle decks. Tests pass a seeded
// source for reproducible runs.
func WithRandSource(src rand.Source) TableOption {
	return func(t *Table) { t.randSource = src }
}

// WithLogOutput redirects the table logger.
func WithLogOutput(out io.Writer) TableOption {
	return func(t *Table) { t.logger = logging.GetZeroLogger("game::table", out) }
}

// NewTable validates the config and seats the given players. Seat numbers
// are 0-based and must be unique and within [0, MaxSeats).
func NewTable(cfg GameConfig, seats []SeatPlayer, opts ...TableOption) (*Table, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(seats) < 2 {
		return nil, ConfigurationError{Msg: fmt.Sprintf("at least 2 players required, got %d", len(seats))}
	}
	if len(seats) > cfg.MaxSeats {
		return nil, ConfigurationError{Msg: fmt.Sprintf("%d players do not fit %d seats", len(seats), cfg.MaxSeats)}
	}
	if cfg.GameCode == "" {
		cfg.GameCode = uuid.New().String()
	}

	t := &Table{
		cfg:        cfg,
		seats:      make([]*Player, cfg.MaxSeats),
		buttonSeat: -1,
		evaluator:  NewHoldemEvaluator(),
		randSource: rand.NewSource(poker.NewSeed()),
		logger:     logging.GetZeroLogger("game::table", os.Stdout),
	}
	for _, s := range seats {
		if s.SeatNo < 0 || s.SeatNo >= cfg.MaxSeats {
			return nil, ConfigurationError{Msg: fmt.Sprintf("seat %d out of range [0, %d)", s.SeatNo, cfg.MaxSeats)}
		}
		if t.seats[s.SeatNo] != nil {
			return nil, ConfigurationError{Msg: fmt.Sprintf("seat %d assigned twice", s.SeatNo)}
		}
		if s.BuyIn <= 0 {
			return nil, ConfigurationError{Msg: fmt.Sprintf("seat %d buy-in must be positive, got %d", s.SeatNo, s.BuyIn)}
		}
		t.seats[s.SeatNo] = &Player{
			SeatNo: s.SeatNo,
			Name:   s.Name,
			Stack:  s.BuyIn,
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// GameCode returns the game identifier.
func (t *Table) GameCode() string {
	return t.cfg.GameCode
}

// Config returns the table configuration.
func (t *Table) Config() GameConfig {
	return t.cfg
}

// Hand returns the hand in progress, or nil.
func (t *Table) Hand() *HandState {
	return t.hand
}

// PlayerAt returns the player at the given seat, or nil for an open seat.
func (t *Table) PlayerAt(seatNo int) *Player {
	if seatNo < 0 || seatNo >= len(t.seats) {
		return nil
	}
	return t.seats[seatNo]
}

// nextSeatWith walks clockwise from the seat after `from`, returning the
// first seat whose player satisfies pred, or NoActionSeat after a full lap.
func (t *Table) nextSeatWith(from int, pred func(*Player) bool) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		seatNo := (from + i) % n
		p := t.seats[seatNo]
		if p != nil && pred(p) {
			return seatNo
		}
	}
	return NoActionSeat
}

// moveButton advances the dealer button to the next seat with a live stack.
// The first hand places the button on the lowest such seat.
func (t *Table) moveButton() error {
	inhand := func(p *Player) bool { return p.Stack > 0 }
	var next int
	if t.buttonSeat < 0 {
		next = t.nextSeatWith(len(t.seats)-1, inhand)
	} else {
		next = t.nextSeatWith(t.buttonSeat, inhand)
	}
	if next == NoActionSeat {
		return ConfigurationError{Msg: "no seat with chips to take the button"}
	}
	t.buttonSeat = next
	return nil
}

// assignPositions labels every in-hand player clockwise from the button.
func (t *Table) assignPositions(buttonSeat int) {
	var inhand []*Player
	n := len(t.seats)
	for i := 0; i < n; i++ {
		p := t.seats[(buttonSeat+i)%n]
		if p != nil && p.Inhand {
			inhand = append(inhand, p)
		}
	}
	names, ok := positionNamesBySize[len(inhand)]
	if !ok {
		return
	}
	for i, p := range inhand {
		p.Position = names[i]
	}
}

// blindSeats returns the small and big blind seats for the given button.
// Heads-up, the button posts the small blind.
func (t *Table) blindSeats(buttonSeat int, inhandCount int) (sbSeat, bbSeat int) {
	canPost := func(p *Player) bool { return p.Inhand }
	if inhandCount == 2 {
		sbSeat = buttonSeat
	} else {
		sbSeat = t.nextSeatWith(buttonSeat, canPost)
	}
	bbSeat = t.nextSeatWith(sbSeat, canPost)
	return sbSeat, bbSeat
}
