package poker

import (
	"fmt"
	"strings"
)

// Card packs a rank and a suit into one byte: high 4 bits are the rank
// (0 = deuce .. 12 = ace), low 4 bits are the suit bit (1 spade, 2 heart,
// 4 diamond, 8 club). Value equality is card identity.
type Card uint8

var (
	strRanks = "23456789TJQKA"

	charSuitToIntSuit = map[byte]uint8{
		's': 1, // spades
		'h': 2, // hearts
		'd': 4, // diamonds
		'c': 8, // clubs
	}
	intSuitToCharSuit = "xshxdxxxc"

	charRankToIntRank = map[byte]uint8{}
)

func init() {
	for i := range strRanks {
		charRankToIntRank[strRanks[i]] = uint8(i)
	}
}

// ParseCard parses a two-character token such as "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card token %q", s)
	}
	rank, ok := charRankToIntRank[s[0]]
	if !ok {
		return 0, fmt.Errorf("invalid card rank in token %q", s)
	}
	suit, ok := charSuitToIntSuit[s[1]]
	if !ok {
		return 0, fmt.Errorf("invalid card suit in token %q", s)
	}
	return Card(rank<<4 | suit), nil
}

// NewCard is ParseCard for trusted input. It panics on a malformed token.
func NewCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}

// ParseCards parses a list of two-character tokens.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

func (c Card) Rank() uint8 {
	return uint8(c) >> 4
}

func (c Card) Suit() uint8 {
	return uint8(c) & 0xF
}

func (c Card) String() string {
	return string(strRanks[c.Rank()]) + string(intSuitToCharSuit[c.Suit()])
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) != 4 {
		return fmt.Errorf("invalid card json %q", string(b))
	}
	card, err := ParseCard(string(b[1:3]))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", c.String())
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

// CardStrings renders cards as two-character tokens.
func CardStrings(cards []Card) []string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return tokens
}
