package game

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/yeogirlyun/holdem-engine/poker"
)

// HandStateRecord is the JSON-serializable form of a hand in progress.
// It carries everything needed to resume play after a restart, including
// the undealt remainder of the deck.
type HandStateRecord struct {
	GameCode     string                    `json:"gameCode"`
	HandNum      uint32                    `json:"handNum"`
	Status       HandStatus                `json:"status"`
	ButtonSeat   int                       `json:"buttonSeat"`
	SBSeat       int                       `json:"sbSeat"`
	BBSeat       int                       `json:"bbSeat"`
	ActionSeat   int                       `json:"actionSeat"`
	Board        []string                  `json:"board"`
	DeckCards    []string                  `json:"deckCards"`
	CommittedPot int64                     `json:"committedPot"`
	Round        *RoundStateRecord         `json:"round"`
	Players      []*PlayerRecord           `json:"players"`
	Balances     map[int]int64             `json:"balances"`
	ActionLogs   map[string]*HandActionLog `json:"actionLogs"`
}

// RoundStateRecord mirrors RoundState for serialization.
type RoundStateRecord struct {
	CurrentBet        int64  `json:"currentBet"`
	LastFullRaise     int64  `json:"lastFullRaise"`
	LastAggressorSeat int    `json:"lastAggressorSeat"`
	ReopenAvailable   bool   `json:"reopenAvailable"`
	Acted             []bool `json:"acted"`
}

// PlayerRecord mirrors Player for serialization.
type PlayerRecord struct {
	SeatNo        int      `json:"seatNo"`
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Stack         int64    `json:"stack"`
	StreetBet     int64    `json:"streetBet"`
	TotalInvested int64    `json:"totalInvested"`
	Inhand        bool     `json:"inhand"`
	Folded        bool     `json:"folded"`
	AllIn         bool     `json:"allIn"`
	HoleCards     []string `json:"holeCards"`
}

// PersistHandState stores in-progress hand state keyed by game code.
type PersistHandState interface {
	Load(gameCode string) (*HandStateRecord, error)
	Save(gameCode string, record *HandStateRecord) error
	Remove(gameCode string) error
}

// HandStateNotFoundError is returned by Load when no state is saved for
// the game.
type HandStateNotFoundError struct {
	GameCode string
}

func (e HandStateNotFoundError) Error() string {
	return fmt.Sprintf("no saved hand state for game %s", e.GameCode)
}

var persistJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Record captures the hand for persistence. Finished hands have nothing
// to resume and return nil.
func (h *HandState) Record() *HandStateRecord {
	if h.Finished() {
		return nil
	}
	rec := &HandStateRecord{
		GameCode:     h.gameCode,
		HandNum:      h.handNum,
		Status:       h.status,
		ButtonSeat:   h.buttonSeat,
		SBSeat:       h.sbSeat,
		BBSeat:       h.bbSeat,
		ActionSeat:   h.actionSeat,
		Board:        poker.CardStrings(h.board),
		DeckCards:    poker.CardStrings(h.deck.Cards()),
		CommittedPot: h.committedPot,
		Balances:     make(map[int]int64, len(h.balancesBefore)),
		ActionLogs: map[string]*HandActionLog{
			StreetPreflop.String(): h.preflopActions,
			StreetFlop.String():    h.flopActions,
			StreetTurn.String():    h.turnActions,
			StreetRiver.String():   h.riverActions,
		},
	}
	for seatNo, balance := range h.balancesBefore {
		rec.Balances[seatNo] = balance
	}
	if h.round != nil {
		acted := make([]bool, len(h.round.Acted))
		copy(acted, h.round.Acted)
		rec.Round = &RoundStateRecord{
			CurrentBet:        h.round.CurrentBet,
			LastFullRaise:     h.round.LastFullRaise,
			LastAggressorSeat: h.round.LastAggressorSeat,
			ReopenAvailable:   h.round.ReopenAvailable,
			Acted:             acted,
		}
	}
	for _, p := range h.players {
		if p == nil {
			continue
		}
		rec.Players = append(rec.Players, &PlayerRecord{
			SeatNo:        p.SeatNo,
			Name:          p.Name,
			Position:      p.Position,
			Stack:         p.Stack,
			StreetBet:     p.StreetBet,
			TotalInvested: p.TotalInvested,
			Inhand:        p.Inhand,
			Folded:        p.Folded,
			AllIn:         p.AllIn,
			HoleCards:     poker.CardStrings(p.HoleCards),
		})
	}
	return rec
}

// RestoreHand rebuilds an in-progress hand from a record and installs it
// as the table's current hand. The table must have been constructed with
// the same seat layout.
func (t *Table) RestoreHand(rec *HandStateRecord) (*HandState, error) {
	if rec == nil {
		return nil, ConfigurationError{Msg: "nil hand state record"}
	}
	if rec.GameCode != t.cfg.GameCode {
		return nil, ConfigurationError{Msg: fmt.Sprintf(
			"record belongs to game %s, table is game %s", rec.GameCode, t.cfg.GameCode)}
	}
	board, err := poker.ParseCards(rec.Board)
	if err != nil {
		return nil, err
	}
	deckCards, err := poker.ParseCards(rec.DeckCards)
	if err != nil {
		return nil, err
	}

	h := &HandState{
		table:          t,
		gameCode:       rec.GameCode,
		handNum:        rec.HandNum,
		status:         rec.Status,
		buttonSeat:     rec.ButtonSeat,
		sbSeat:         rec.SBSeat,
		bbSeat:         rec.BBSeat,
		actionSeat:     rec.ActionSeat,
		deck:           poker.NewDeckFromCards(deckCards),
		board:          board,
		committedPot:   rec.CommittedPot,
		players:        t.seats,
		balancesBefore: make(map[int]int64, len(rec.Balances)),
		preflopActions: restoredLog(rec.ActionLogs, StreetPreflop),
		flopActions:    restoredLog(rec.ActionLogs, StreetFlop),
		turnActions:    restoredLog(rec.ActionLogs, StreetTurn),
		riverActions:   restoredLog(rec.ActionLogs, StreetRiver),
		logger:         t.logger,
	}
	for seatNo, balance := range rec.Balances {
		h.balancesBefore[seatNo] = balance
	}
	if rec.Round != nil {
		h.round = &RoundState{
			CurrentBet:        rec.Round.CurrentBet,
			LastFullRaise:     rec.Round.LastFullRaise,
			LastAggressorSeat: rec.Round.LastAggressorSeat,
			ReopenAvailable:   rec.Round.ReopenAvailable,
			Acted:             append([]bool(nil), rec.Round.Acted...),
		}
	}
	for _, pr := range rec.Players {
		if pr.SeatNo < 0 || pr.SeatNo >= len(t.seats) || t.seats[pr.SeatNo] == nil {
			return nil, ConfigurationError{Msg: fmt.Sprintf("record seat %d not present at table", pr.SeatNo)}
		}
		holeCards, err := poker.ParseCards(pr.HoleCards)
		if err != nil {
			return nil, err
		}
		p := t.seats[pr.SeatNo]
		p.Name = pr.Name
		p.Position = pr.Position
		p.Stack = pr.Stack
		p.StreetBet = pr.StreetBet
		p.TotalInvested = pr.TotalInvested
		p.Inhand = pr.Inhand
		p.Folded = pr.Folded
		p.AllIn = pr.AllIn
		p.HoleCards = holeCards
	}
	t.buttonSeat = rec.ButtonSeat
	t.handNum = rec.HandNum
	t.hand = h
	return h, nil
}

func restoredLog(logs map[string]*HandActionLog, street Street) *HandActionLog {
	if log, ok := logs[street.String()]; ok && log != nil {
		return log
	}
	return newHandActionLog()
}
