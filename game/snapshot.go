package game

import (
	"github.com/yeogirlyun/holdem-engine/poker"
)

// PlayerSnapshot is one seat's public state. HoleCards is populated only
// when the viewer is entitled to see them.
type PlayerSnapshot struct {
	SeatNo        int      `json:"seatNo"`
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Stack         int64    `json:"stack"`
	StreetBet     int64    `json:"streetBet"`
	TotalInvested int64    `json:"totalInvested"`
	Inhand        bool     `json:"inhand"`
	Folded        bool     `json:"folded"`
	AllIn         bool     `json:"allIn"`
	HoleCards     []string `json:"holeCards,omitempty"`
}

// GameStateSnapshot is an immutable view of the hand usable by bots, UIs
// and persistence readers. TotalPot includes the live street bets;
// CommittedPot does not.
type GameStateSnapshot struct {
	GameCode     string            `json:"gameCode"`
	HandNum      uint32            `json:"handNum"`
	Status       HandStatus        `json:"status"`
	Street       Street            `json:"street"`
	ButtonSeat   int               `json:"buttonSeat"`
	SBSeat       int               `json:"sbSeat"`
	BBSeat       int               `json:"bbSeat"`
	ActionSeat   int               `json:"actionSeat"`
	Board        []string          `json:"board"`
	CommittedPot int64             `json:"committedPot"`
	TotalPot     int64             `json:"totalPot"`
	CurrentBet   int64             `json:"currentBet"`
	MinRaiseTo   int64             `json:"minRaiseTo"`
	BigBlind     int64             `json:"bigBlind"`
	Players      []*PlayerSnapshot `json:"players"`
}

// Snapshot returns a full-visibility view including all hole cards.
func (h *HandState) Snapshot() *GameStateSnapshot {
	return h.snapshotFor(NoActionSeat, true)
}

// SnapshotFor returns the view for one seat: only that seat's hole cards
// are visible until showdown, where every contender's cards are shown.
func (h *HandState) SnapshotFor(viewerSeat int) *GameStateSnapshot {
	return h.snapshotFor(viewerSeat, false)
}

func (h *HandState) snapshotFor(viewerSeat int, omniscient bool) *GameStateSnapshot {
	snap := &GameStateSnapshot{
		GameCode:     h.gameCode,
		HandNum:      h.handNum,
		Status:       h.status,
		Street:       h.CurrentStreet(),
		ButtonSeat:   h.buttonSeat,
		SBSeat:       h.sbSeat,
		BBSeat:       h.bbSeat,
		ActionSeat:   h.actionSeat,
		Board:        poker.CardStrings(h.board),
		CommittedPot: h.committedPot,
		BigBlind:     h.table.cfg.BigBlind,
	}
	snap.TotalPot = h.committedPot
	if h.round != nil {
		snap.CurrentBet = h.round.CurrentBet
		snap.MinRaiseTo = h.round.CurrentBet + h.round.LastFullRaise
	}
	atShowdown := h.status == StatusShowdown || (h.status == StatusEndHand && h.result != nil && h.result.Showdown)
	for _, p := range h.players {
		if p == nil {
			continue
		}
		ps := &PlayerSnapshot{
			SeatNo:        p.SeatNo,
			Name:          p.Name,
			Position:      p.Position,
			Stack:         p.Stack,
			StreetBet:     p.StreetBet,
			TotalInvested: p.TotalInvested,
			Inhand:        p.Inhand,
			Folded:        p.Folded,
			AllIn:         p.AllIn,
		}
		visible := omniscient || p.SeatNo == viewerSeat || (atShowdown && p.InContention())
		if visible && len(p.HoleCards) > 0 {
			ps.HoleCards = poker.CardStrings(p.HoleCards)
		}
		snap.TotalPot += p.StreetBet
		snap.Players = append(snap.Players, ps)
	}
	return snap
}
