package game

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/yeogirlyun/holdem-engine/logging"
	"github.com/yeogirlyun/holdem-engine/poker"
)

// EventSink observes hand lifecycle events. Snapshots passed to sinks are
// full-visibility views; sinks relaying state to players should re-derive
// per-seat views with SnapshotFor.
type EventSink interface {
	HandStarted(snapshot *GameStateSnapshot)
	ActionApplied(snapshot *GameStateSnapshot, action *HandAction)
	StreetDealt(snapshot *GameStateSnapshot, street Street, cards []poker.Card)
	HandFinished(result *HandResult)
}

func (h *HandState) emitHandStarted() {
	if len(h.table.sinks) == 0 {
		return
	}
	snap := h.Snapshot()
	for _, sink := range h.table.sinks {
		sink.HandStarted(snap)
	}
}

func (h *HandState) emitActionApplied(action *HandAction) {
	if len(h.table.sinks) == 0 {
		return
	}
	snap := h.Snapshot()
	for _, sink := range h.table.sinks {
		sink.ActionApplied(snap, action)
	}
}

func (h *HandState) emitStreetDealt(street Street, cards []poker.Card) {
	if len(h.table.sinks) == 0 {
		return
	}
	snap := h.Snapshot()
	for _, sink := range h.table.sinks {
		sink.StreetDealt(snap, street, cards)
	}
}

func (h *HandState) emitHandFinished(result *HandResult) {
	for _, sink := range h.table.sinks {
		sink.HandFinished(result)
	}
}

// LogEventSink writes every event through a zerolog logger. Useful as a
// simulator trace and as a template for real transports.
type LogEventSink struct {
	logger *zerolog.Logger
}

func NewLogEventSink(out io.Writer) *LogEventSink {
	return &LogEventSink{logger: logging.GetZeroLogger("game::events", out)}
}

func (s *LogEventSink) HandStarted(snapshot *GameStateSnapshot) {
	s.logger.Info().
		Str(logging.GameCodeKey, snapshot.GameCode).
		Uint32(logging.HandNumKey, snapshot.HandNum).
		Int("button", snapshot.ButtonSeat).
		Msg("hand started")
}

func (s *LogEventSink) ActionApplied(snapshot *GameStateSnapshot, action *HandAction) {
	s.logger.Info().
		Str(logging.GameCodeKey, snapshot.GameCode).
		Uint32(logging.HandNumKey, snapshot.HandNum).
		Int(logging.SeatNumKey, action.SeatNo).
		Str(logging.ActionKey, action.Action).
		Int64(logging.AmountKey, action.Amount).
		Int64("pot", snapshot.TotalPot).
		Msg("action")
}

func (s *LogEventSink) StreetDealt(snapshot *GameStateSnapshot, street Street, cards []poker.Card) {
	s.logger.Info().
		Str(logging.GameCodeKey, snapshot.GameCode).
		Uint32(logging.HandNumKey, snapshot.HandNum).
		Str(logging.StreetKey, street.String()).
		Str("cards", poker.CardsToString(cards)).
		Msg("street dealt")
}

func (s *LogEventSink) HandFinished(result *HandResult) {
	s.logger.Info().
		Str(logging.GameCodeKey, result.GameCode).
		Uint32(logging.HandNumKey, result.HandNum).
		Str("won_at", result.WonAt.String()).
		Bool("showdown", result.Showdown).
		Msg("hand finished")
}
