package driver

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/yeogirlyun/holdem-engine/game"
	"github.com/yeogirlyun/holdem-engine/gamescript"
	"github.com/yeogirlyun/holdem-engine/logging"
	"github.com/yeogirlyun/holdem-engine/poker"
)

// ScriptRunner replays a game script hand by hand against a table and
// verifies the scripted expectations: per-street pots, winners, and final
// stacks. Replays with the same script always produce the same results.
type ScriptRunner struct {
	script *gamescript.Script
	table  *game.Table
	logger *zerolog.Logger
}

func NewScriptRunner(script *gamescript.Script, out io.Writer, opts ...game.TableOption) (*ScriptRunner, error) {
	if out == nil {
		out = os.Stdout
	}
	seats := make([]game.SeatPlayer, 0, len(script.StartingSeats))
	for _, s := range script.StartingSeats {
		seats = append(seats, game.SeatPlayer{
			SeatNo: s.Seat,
			Name:   s.Player,
			BuyIn:  s.BuyIn,
		})
	}
	cfg := game.GameConfig{
		MaxSeats:   script.Game.MaxPlayers,
		SmallBlind: script.Game.SmallBlind,
		BigBlind:   script.Game.BigBlind,
	}
	table, err := game.NewTable(cfg, seats, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating table from script")
	}
	return &ScriptRunner{
		script: script,
		table:  table,
		logger: logging.GetZeroLogger("driver::script", out),
	}, nil
}

// Table exposes the underlying table, mainly for assertions in tests.
func (r *ScriptRunner) Table() *game.Table {
	return r.table
}

// Run replays every hand in the script.
func (r *ScriptRunner) Run() error {
	for i := range r.script.Hands {
		hand := &r.script.Hands[i]
		if err := r.runHand(hand); err != nil {
			return errors.Wrapf(err, "hand %d", hand.Num)
		}
	}
	return nil
}

func (r *ScriptRunner) runHand(scriptHand *gamescript.Hand) error {
	deck, err := r.buildDeck(scriptHand)
	if err != nil {
		return err
	}
	hand, err := r.table.StartHand(
		game.WithDeck(deck),
		game.WithButton(scriptHand.Setup.ButtonPos),
	)
	if err != nil {
		return errors.Wrap(err, "starting hand")
	}
	r.logger.Info().
		Str(logging.GameCodeKey, r.table.GameCode()).
		Uint32(logging.HandNumKey, hand.HandNum()).
		Msg("replaying hand")

	rounds := []struct {
		street game.Street
		round  gamescript.BettingRound
	}{
		{game.StreetPreflop, scriptHand.Preflop},
		{game.StreetFlop, scriptHand.Flop},
		{game.StreetTurn, scriptHand.Turn},
		{game.StreetRiver, scriptHand.River},
	}
	for _, sr := range rounds {
		if err := r.runBettingRound(hand, sr.street, sr.round); err != nil {
			return err
		}
	}
	if !hand.Finished() {
		return errors.Errorf("hand did not finish, stuck in %s", hand.Status())
	}
	return r.verifyResult(scriptHand, hand.Result())
}

func (r *ScriptRunner) runBettingRound(hand *game.HandState, street game.Street, round gamescript.BettingRound) error {
	for _, sa := range round.SeatActions {
		kind, err := game.ParseActionKind(sa.Action.Action)
		if err != nil {
			return err
		}
		err = hand.ExecuteAction(sa.Action.Seat, kind, sa.Action.Amount)
		if err != nil {
			return errors.Wrapf(err, "%s action [%d, %s, %d]",
				street, sa.Action.Seat, sa.Action.Action, sa.Action.Amount)
		}
	}
	if round.Verify.TotalPot != nil {
		gotPot := hand.Snapshot().TotalPot
		if gotPot != *round.Verify.TotalPot {
			return errors.Errorf("%s pot verification failed: want %d, got %d",
				street, *round.Verify.TotalPot, gotPot)
		}
	}
	return nil
}

// buildDeck arranges a scripted deck whose draw order reproduces the
// scripted cards: two hole cards per seat clockwise from the button, then
// the board.
func (r *ScriptRunner) buildDeck(scriptHand *gamescript.Hand) (*poker.Deck, error) {
	cardsBySeat := make(map[int][]string)
	for _, sc := range scriptHand.Setup.SeatCards {
		cardsBySeat[sc.Seat] = sc.Cards
	}

	var tokens []string
	maxSeats := r.table.Config().MaxSeats
	button := scriptHand.Setup.ButtonPos
	for i := 1; i <= maxSeats; i++ {
		seatNo := (button + i) % maxSeats
		cards, ok := cardsBySeat[seatNo]
		if !ok {
			continue
		}
		tokens = append(tokens, cards...)
	}
	tokens = append(tokens, scriptHand.BoardCards()...)

	prefix, err := poker.ParseCards(tokens)
	if err != nil {
		return nil, errors.Wrap(err, "parsing scripted cards")
	}
	return poker.NewScriptedDeck(prefix)
}

func (r *ScriptRunner) verifyResult(scriptHand *gamescript.Hand, result *game.HandResult) error {
	if result == nil {
		return errors.New("hand finished without a result")
	}
	for _, winner := range scriptHand.Result.Winners {
		got := result.TotalWon(winner.Seat)
		if got != winner.Receive {
			return errors.Errorf("winner verification failed for seat %d: want %d, got %d",
				winner.Seat, winner.Receive, got)
		}
	}
	for _, ps := range scriptHand.Result.PlayerStacks {
		p := r.table.PlayerAt(ps.Seat)
		if p == nil {
			return errors.Errorf("stack verification names empty seat %d", ps.Seat)
		}
		if p.Stack != ps.Stack {
			return errors.Errorf("stack verification failed for seat %d: want %d, got %d",
				ps.Seat, ps.Stack, p.Stack)
		}
	}
	return nil
}
