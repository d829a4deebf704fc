package game

import (
	"github.com/yeogirlyun/holdem-engine/logging"
	"github.com/yeogirlyun/holdem-engine/poker"
	"github.com/yeogirlyun/holdem-engine/util"
)

// Winner is one seat's share of one pot. RankText is empty for pots won
// without showdown.
type Winner struct {
	SeatNo   int    `json:"seatNo"`
	Amount   int64  `json:"amount"`
	RankText string `json:"rankText,omitempty"`
}

// PotResult is a settled pot slice: pot 0 is the main pot.
type PotResult struct {
	PotNo   int       `json:"potNo"`
	Pot     int64     `json:"pot"`
	SeatNos []int     `json:"seatNos"`
	Winners []*Winner `json:"winners"`
}

// HandPlayerBalance records one seat's stack before and after the hand.
type HandPlayerBalance struct {
	Before int64 `json:"before"`
	After  int64 `json:"after"`
}

// HandResult is the full settlement of a hand.
type HandResult struct {
	GameCode   string                     `json:"gameCode"`
	HandNum    uint32                     `json:"handNum"`
	WonAt      HandStatus                 `json:"wonAt"`
	Showdown   bool                       `json:"showdown"`
	Board      []string                   `json:"board"`
	Pots       []*PotResult               `json:"pots"`
	Balances   map[int]*HandPlayerBalance `json:"balances"`
	PreflopLog *HandActionLog             `json:"preflop"`
	FlopLog    *HandActionLog             `json:"flop"`
	TurnLog    *HandActionLog             `json:"turn"`
	RiverLog   *HandActionLog             `json:"river"`
}

// TotalWon returns the total amount credited to a seat across all pots.
func (r *HandResult) TotalWon(seatNo int) int64 {
	var total int64
	for _, pot := range r.Pots {
		for _, w := range pot.Winners {
			if w.SeatNo == seatNo {
				total += w.Amount
			}
		}
	}
	return total
}

// settleUncontested awards the whole pot to the last player in contention.
// No cards are revealed.
func (h *HandState) settleUncontested() *HandResult {
	var winner *Player
	for _, p := range h.players {
		if p != nil && p.InContention() {
			winner = p
			break
		}
	}
	pot := h.committedPot
	winner.Stack += pot

	result := h.newResult(false)
	result.Pots = []*PotResult{
		{
			PotNo:   0,
			Pot:     pot,
			SeatNos: []int{winner.SeatNo},
			Winners: []*Winner{{SeatNo: winner.SeatNo, Amount: pot}},
		},
	}
	h.fillBalances(result)
	return result
}

// settleShowdown builds the pot slices, evaluates every contender against
// the full board, and pays each slice to its best hand(s). Ties split the
// slice; odd cents go to the first tied seat clockwise from the button.
func (h *HandState) settleShowdown() *HandResult {
	pots := buildPots(h.players)

	evaluated := make(map[int]EvaluatedHand)
	for _, p := range h.players {
		if p != nil && p.InContention() {
			evaluated[p.SeatNo] = h.table.evaluator.Evaluate(p.HoleCards, h.board)
		}
	}

	result := h.newResult(true)
	var paidOut int64
	for potNo, pot := range pots {
		potResult := &PotResult{
			PotNo:   potNo,
			Pot:     pot.Pot,
			SeatNos: pot.SeatNos,
		}
		best := evaluated[pot.SeatNos[0]].Rank
		for _, seatNo := range pot.SeatNos[1:] {
			if evaluated[seatNo].Rank < best {
				best = evaluated[seatNo].Rank
			}
		}
		var winners []int
		for _, seatNo := range pot.SeatNos {
			if evaluated[seatNo].Rank == best {
				winners = append(winners, seatNo)
			}
		}
		winners = h.seatsClockwiseFromButton(winners)
		shares := util.SplitChips(pot.Pot, len(winners))
		for i, seatNo := range winners {
			h.players[seatNo].Stack += shares[i]
			paidOut += shares[i]
			potResult.Winners = append(potResult.Winners, &Winner{
				SeatNo:   seatNo,
				Amount:   shares[i],
				RankText: evaluated[seatNo].RankText,
			})
		}
		result.Pots = append(result.Pots, potResult)
	}

	if paidOut != h.committedPot {
		h.logger.Error().
			Str(logging.GameCodeKey, h.gameCode).
			Uint32(logging.HandNumKey, h.handNum).
			Int64("pot", h.committedPot).
			Int64("paid", paidOut).
			Msg("pot settlement mismatch")
	}
	h.fillBalances(result)
	return result
}

func (h *HandState) newResult(showdown bool) *HandResult {
	return &HandResult{
		GameCode:   h.gameCode,
		HandNum:    h.handNum,
		WonAt:      h.wonAt,
		Showdown:   showdown,
		Board:      poker.CardStrings(h.board),
		Balances:   make(map[int]*HandPlayerBalance),
		PreflopLog: h.preflopActions,
		FlopLog:    h.flopActions,
		TurnLog:    h.turnActions,
		RiverLog:   h.riverActions,
	}
}

func (h *HandState) fillBalances(result *HandResult) {
	for _, p := range h.players {
		if p == nil {
			continue
		}
		result.Balances[p.SeatNo] = &HandPlayerBalance{
			Before: h.balancesBefore[p.SeatNo],
			After:  p.Stack,
		}
	}
}
