package game

import (
	chpoker "github.com/chehsunliu/poker"

	"github.com/yeogirlyun/holdem-engine/poker"
)

// EvaluatedHand is a comparable hand strength. Lower Rank is stronger.
type EvaluatedHand struct {
	Rank     int32
	RankText string
}

// HandEvaluator scores a player's best five-card hand from hole cards and
// board. Implementations must be deterministic.
type HandEvaluator interface {
	Evaluate(holeCards []poker.Card, board []poker.Card) EvaluatedHand
}

type holdemEvaluator struct{}

// NewHoldemEvaluator returns the default evaluator, backed by the
// chehsunliu lookup-table ranker.
func NewHoldemEvaluator() HandEvaluator {
	return holdemEvaluator{}
}

func (holdemEvaluator) Evaluate(holeCards []poker.Card, board []poker.Card) EvaluatedHand {
	cards := make([]chpoker.Card, 0, len(holeCards)+len(board))
	for _, c := range holeCards {
		cards = append(cards, chpoker.NewCard(c.String()))
	}
	for _, c := range board {
		cards = append(cards, chpoker.NewCard(c.String()))
	}
	rank := chpoker.Evaluate(cards)
	return EvaluatedHand{Rank: rank, RankText: chpoker.RankString(rank)}
}
