package game

// HandAction is one applied action as recorded in the per-street log.
// Amount is the actor's street commitment after the action (0 for folds
// and checks); Stack is what remained behind afterwards.
type HandAction struct {
	SeatNo int    `json:"seatNo"`
	Action string `json:"action"`
	Amount int64  `json:"amount"`
	Stack  int64  `json:"stack"`
}

// HandActionLog records one street of actions. PotStart is the committed
// pot when the street opened.
type HandActionLog struct {
	PotStart int64         `json:"potStart"`
	Actions  []*HandAction `json:"actions"`
}

func newHandActionLog() *HandActionLog {
	return &HandActionLog{}
}

// ActionsByStreet returns the per-street logs in play order. Streets that
// were never reached have empty logs.
func (h *HandState) ActionsByStreet() map[Street]*HandActionLog {
	return map[Street]*HandActionLog{
		StreetPreflop: h.preflopActions,
		StreetFlop:    h.flopActions,
		StreetTurn:    h.turnActions,
		StreetRiver:   h.riverActions,
	}
}
