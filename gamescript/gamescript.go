package gamescript

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script is a YAML game script: a table setup plus fully specified hands
// (cards and actions) with expected outcomes. Scripts drive deterministic
// replays in tests and in the simulator.
type Script struct {
	Game          Game           `yaml:"game"`
	StartingSeats []StartingSeat `yaml:"starting-seats"`
	Hands         []Hand         `yaml:"hands"`
}

// Game contains the table configuration. All chip amounts are in cents.
type Game struct {
	Title      string `yaml:"title"`
	SmallBlind int64  `yaml:"small-blind"`
	BigBlind   int64  `yaml:"big-blind"`
	MaxPlayers int    `yaml:"max-players"`
}

// StartingSeat is an entry in the starting-seats array.
type StartingSeat struct {
	Seat   int    `yaml:"seat"`
	Player string `yaml:"player"`
	BuyIn  int64  `yaml:"buy-in"`
}

// Hand is one scripted hand.
type Hand struct {
	Num     uint32       `yaml:"num"`
	Setup   HandSetup    `yaml:"setup"`
	Preflop BettingRound `yaml:"preflop"`
	Flop    BettingRound `yaml:"flop"`
	Turn    BettingRound `yaml:"turn"`
	River   BettingRound `yaml:"river"`
	Result  HandResult   `yaml:"result"`
}

// HandSetup pins the button and every card for the hand.
type HandSetup struct {
	ButtonPos int         `yaml:"button-pos"`
	SeatCards []SeatCards `yaml:"seat-cards"`
	Flop      []string    `yaml:"flop"`
	Turn      string      `yaml:"turn"`
	River     string      `yaml:"river"`
}

type SeatCards struct {
	Seat  int      `yaml:"seat"`
	Cards []string `yaml:"cards"`
}

// BettingRound is one street of scripted actions.
type BettingRound struct {
	SeatActions []SeatAction             `yaml:"seat-actions"`
	Verify      BettingRoundVerification `yaml:"verify"`
}

// BettingRoundVerification checks state after the street's actions.
type BettingRoundVerification struct {
	TotalPot *int64 `yaml:"total-pot"`
}

type SeatAction struct {
	Action Action `yaml:"action"`
}

// Action is one scripted action.
type Action struct {
	Seat   int
	Action string
	Amount int64
}

// UnmarshalYAML parses the compact action expression.
// 1, FOLD
// 1, RAISE, 600
func (a *Action) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	err := unmarshal(&v)
	if err != nil {
		return err
	}
	actionExpr, ok := v.(string)
	if !ok {
		return fmt.Errorf("cannot parse action expression [%v] as string", v)
	}
	tokens := strings.Split(actionExpr, ",")
	if len(tokens) != 2 && len(tokens) != 3 {
		return fmt.Errorf("invalid action expression [%v], need 2 or 3 comma-separated tokens", v)
	}

	trimmed := strings.TrimSpace(tokens[0])
	seatNo, err := strconv.Atoi(trimmed)
	if err != nil {
		return errors.Wrapf(err, "cannot convert first token [%s] to seat number", trimmed)
	}

	var amount int64
	if len(tokens) == 3 {
		trimmed := strings.TrimSpace(tokens[2])
		amount, err = strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "cannot convert third token [%s] to amount", trimmed)
		}
	}
	a.Seat = seatNo
	a.Action = strings.TrimSpace(tokens[1])
	a.Amount = amount
	return nil
}

// HandResult is the expected settlement of a scripted hand.
type HandResult struct {
	Winners      []Winner      `yaml:"winners"`
	PlayerStacks []PlayerStack `yaml:"player-stacks"`
}

type Winner struct {
	Seat    int   `yaml:"seat"`
	Receive int64 `yaml:"receive"`
}

type PlayerStack struct {
	Seat  int   `yaml:"seat"`
	Stack int64 `yaml:"stack"`
}

// ReadGameScript reads and validates a game script yaml file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading game script file [%s]", fileName)
	}

	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing YAML file [%s]", fileName)
	}

	err = script.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "error validating script [%s]", fileName)
	}
	return &script, nil
}

// Validate checks seat references and card setups before any hand runs.
func (s *Script) Validate() error {
	startingSeats := mapset.NewSet()
	playerNames := mapset.NewSet()

	for _, seat := range s.StartingSeats {
		if startingSeats.Contains(seat.Seat) {
			return fmt.Errorf("duplicate seat number [%d] in starting-seats", seat.Seat)
		}
		startingSeats.Add(seat.Seat)
		if playerNames.Contains(seat.Player) {
			return fmt.Errorf("duplicate player name [%s] in starting-seats", seat.Player)
		}
		playerNames.Add(seat.Player)
	}

	for i, hand := range s.Hands {
		handNum := i + 1
		seatCardSeats := mapset.NewSet()
		for _, seatCards := range hand.Setup.SeatCards {
			if !startingSeats.Contains(seatCards.Seat) {
				return fmt.Errorf("seat number [%d] in hand %d seat-cards is not seated", seatCards.Seat, handNum)
			}
			if seatCardSeats.Contains(seatCards.Seat) {
				return fmt.Errorf("duplicate seat number [%d] in hand %d seat-cards", seatCards.Seat, handNum)
			}
			seatCardSeats.Add(seatCards.Seat)
			if len(seatCards.Cards) != 2 {
				return fmt.Errorf("hand %d seat %d must have 2 hole cards", handNum, seatCards.Seat)
			}
		}

		for street, round := range map[string]BettingRound{
			"preflop": hand.Preflop,
			"flop":    hand.Flop,
			"turn":    hand.Turn,
			"river":   hand.River,
		} {
			for _, seatAction := range round.SeatActions {
				if !startingSeats.Contains(seatAction.Action.Seat) {
					return fmt.Errorf("seat number [%d] is not valid for hand %d %s",
						seatAction.Action.Seat, handNum, street)
				}
			}
		}
	}
	return nil
}

// GetSeatNoByPlayerName returns the starting seat of a named player, or -1.
func (s *Script) GetSeatNoByPlayerName(playerName string) int {
	for _, seat := range s.StartingSeats {
		if seat.Player == playerName {
			return seat.Seat
		}
	}
	return -1
}

// GetHand returns the scripted hand with the given number.
func (s *Script) GetHand(handNum uint32) *Hand {
	for i := range s.Hands {
		if s.Hands[i].Num == handNum {
			return &s.Hands[i]
		}
	}
	return nil
}

// BoardCards returns the scripted board tokens in deal order.
func (h *Hand) BoardCards() []string {
	var board []string
	board = append(board, h.Setup.Flop...)
	if h.Setup.Turn != "" {
		board = append(board, h.Setup.Turn)
	}
	if h.Setup.River != "" {
		board = append(board, h.Setup.River)
	}
	return board
}
