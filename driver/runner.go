package driver

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/yeogirlyun/holdem-engine/game"
	"github.com/yeogirlyun/holdem-engine/logging"
)

// BotRunner plays hands autonomously, pulling every decision from the
// DecisionSource registered for each seat. With persistence enabled, the
// hand state is saved after every action and removed when the hand ends,
// mirroring a crash-recoverable server loop.
type BotRunner struct {
	table   *game.Table
	sources map[int]game.DecisionSource
	tracker game.PersistHandState
	logger  *zerolog.Logger

	HandsPlayed uint32
}

type BotRunnerOption func(*BotRunner)

// WithPersistence saves hand state through the tracker between actions.
func WithPersistence(tracker game.PersistHandState) BotRunnerOption {
	return func(b *BotRunner) { b.tracker = tracker }
}

// WithBotLogOutput redirects the runner logger.
func WithBotLogOutput(out io.Writer) BotRunnerOption {
	return func(b *BotRunner) { b.logger = logging.GetZeroLogger("driver::botrunner", out) }
}

func NewBotRunner(table *game.Table, sources map[int]game.DecisionSource, opts ...BotRunnerOption) *BotRunner {
	b := &BotRunner{
		table:   table,
		sources: sources,
		logger:  logging.GetZeroLogger("driver::botrunner", os.Stdout),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run plays up to numHands hands, stopping early when fewer than two seats
// still have chips.
func (b *BotRunner) Run(numHands uint32) error {
	for i := uint32(0); i < numHands; i++ {
		if b.playersWithChips() < 2 {
			b.logger.Info().
				Str(logging.GameCodeKey, b.table.GameCode()).
				Uint32("handsPlayed", b.HandsPlayed).
				Msg("stopping, not enough players with chips")
			return nil
		}
		if err := b.playHand(); err != nil {
			return errors.Wrapf(err, "bot hand %d", i+1)
		}
		b.HandsPlayed++
	}
	return nil
}

func (b *BotRunner) playersWithChips() int {
	n := 0
	for seatNo := 0; seatNo < b.table.Config().MaxSeats; seatNo++ {
		if p := b.table.PlayerAt(seatNo); p != nil && p.Stack > 0 {
			n++
		}
	}
	return n
}

func (b *BotRunner) playHand() error {
	hand, err := b.table.StartHand()
	if err != nil {
		return err
	}
	for !hand.Finished() {
		seatNo := hand.ActionSeat()
		if seatNo == game.NoActionSeat {
			return errors.Errorf("no action seat while hand is in %s", hand.Status())
		}
		source, ok := b.sources[seatNo]
		if !ok {
			return errors.Errorf("no decision source for seat %d", seatNo)
		}
		decision, ok := source.GetDecision(seatNo, hand.SnapshotFor(seatNo))
		if !ok {
			return errors.Errorf("seat %d has no decision available", seatNo)
		}
		err := hand.ExecuteAction(seatNo, decision.Action, decision.ToAmount)
		if err != nil {
			// A bot producing an illegal decision gives up the hand.
			b.logger.Warn().
				Str(logging.GameCodeKey, b.table.GameCode()).
				Int(logging.SeatNumKey, seatNo).
				Err(err).
				Msg("bot decision rejected, folding")
			if foldErr := hand.ExecuteAction(seatNo, game.ActionFold, 0); foldErr != nil {
				return foldErr
			}
		}
		if b.tracker != nil && !hand.Finished() {
			if rec := hand.Record(); rec != nil {
				if err := b.tracker.Save(b.table.GameCode(), rec); err != nil {
					return errors.Wrap(err, "persisting hand state")
				}
			}
		}
	}
	if b.tracker != nil {
		if err := b.tracker.Remove(b.table.GameCode()); err != nil {
			return errors.Wrap(err, "removing persisted hand state")
		}
	}
	return nil
}
