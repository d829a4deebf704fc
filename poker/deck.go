package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

var fullDeck []Card

func init() {
	fullDeck = initializeFullCards()
}

// InsufficientCardsError is returned when a draw asks for more cards than
// the deck holds. It indicates a deck-construction bug upstream.
type InsufficientCardsError struct {
	Requested int
	Remaining int
}

func (e InsufficientCardsError) Error() string {
	return fmt.Sprintf("cannot draw %d cards, %d remaining in deck", e.Requested, e.Remaining)
}

// Deck is an ordered set of the remaining undealt cards. Cards only ever
// leave from the front; the dealt prefix never reappears.
type Deck struct {
	cards []Card
}

// NewSeed returns a cryptographically seeded value for math/rand sources.
func NewSeed() int64 {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NewDeck returns a full 52-card deck shuffled with the given source, or a
// crypto-seeded source when nil.
func NewDeck(source rand.Source) *Deck {
	if source == nil {
		source = rand.NewSource(NewSeed())
	}
	deck := NewOrderedDeck()
	randGen := rand.New(source)
	randGen.Shuffle(len(deck.cards), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})
	return deck
}

// NewOrderedDeck returns the 52 cards in canonical (unshuffled) order.
func NewOrderedDeck() *Deck {
	deck := &Deck{cards: make([]Card, len(fullDeck))}
	copy(deck.cards, fullDeck)
	return deck
}

// NewScriptedDeck builds a deck whose first len(prefix) draws are exactly
// the given cards, followed by the rest of the 52 in canonical order. Used
// for hand replay and tests. Duplicate prefix cards are rejected.
func NewScriptedDeck(prefix []Card) (*Deck, error) {
	used := make(map[Card]bool, len(prefix))
	for _, card := range prefix {
		if used[card] {
			return nil, fmt.Errorf("duplicate card %s in scripted deck", card)
		}
		used[card] = true
	}
	cards := make([]Card, 0, len(fullDeck))
	cards = append(cards, prefix...)
	for _, card := range fullDeck {
		if !used[card] {
			cards = append(cards, card)
		}
	}
	if len(cards) != len(fullDeck) {
		return nil, fmt.Errorf("scripted deck has %d cards, want %d", len(cards), len(fullDeck))
	}
	return &Deck{cards: cards}, nil
}

// NewDeckFromCards rebuilds a partially dealt deck from its remaining
// cards, preserving order. Used when resuming a persisted hand.
func NewDeckFromCards(cards []Card) *Deck {
	deck := &Deck{cards: make([]Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

// Draw removes and returns the next n cards.
func (deck *Deck) Draw(n int) ([]Card, error) {
	if n > len(deck.cards) {
		return nil, InsufficientCardsError{Requested: n, Remaining: len(deck.cards)}
	}
	cards := make([]Card, n)
	copy(cards, deck.cards[:n])
	deck.cards = deck.cards[n:]
	return cards, nil
}

func (deck *Deck) Remaining() int {
	return len(deck.cards)
}

func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

// Cards returns the remaining cards without dealing them. Callers must not
// mutate the result.
func (deck *Deck) Cards() []Card {
	return deck.cards
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}

func initializeFullCards() []Card {
	var cards []Card
	for i := range strRanks {
		for _, suit := range []byte{'s', 'h', 'd', 'c'} {
			cards = append(cards, NewCard(string(strRanks[i])+string(suit)))
		}
	}
	return cards
}
