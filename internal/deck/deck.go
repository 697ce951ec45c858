package deck

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/highcard/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck is an ordered sequence of cards; index 0 is dealt first
type Deck []card.Card

// Source picks a uniformly random integer in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Build returns a fresh deck ordered by suit, then by ascending rank
func Build() Deck {
	d := make(Deck, 0, Size)
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			d = append(d, card.New(s, r))
		}
	}
	return d
}

// Shuffle permutes the deck in place with a Fisher-Yates shuffle and returns it
func Shuffle(d Deck, src Source) Deck {
	for i := len(d) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// NewSource returns a deterministic source for the given seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// RandomSource returns a source seeded from the operating system
func RandomSource() *rand.Rand {
	var seed [32]byte
	crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Validate checks that the deck holds every suit and rank combination exactly once
func Validate(d Deck) error {
	if len(d) != Size {
		return fmt.Errorf("deck has %d cards, want %d", len(d), Size)
	}

	seen := make(map[card.Card]bool, Size)
	for i, c := range d {
		if c.Suit < card.Hearts || c.Suit > card.Spades || c.Rank < card.Two || c.Rank > card.Ace {
			return fmt.Errorf("invalid card at position %d: %v", i, c)
		}
		if seen[c] {
			return fmt.Errorf("duplicate card at position %d: %s", i, c)
		}
		seen[c] = true
	}

	return nil
}

// Pairs splits the deck into consecutive two-card hands
func (d Deck) Pairs() [][2]card.Card {
	pairs := make([][2]card.Card, 0, len(d)/2)
	for i := 0; i+1 < len(d); i += 2 {
		pairs = append(pairs, [2]card.Card{d[i], d[i+1]})
	}
	return pairs
}
