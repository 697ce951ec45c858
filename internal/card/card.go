package card

import (
	"fmt"
	"strings"
)

// Suit represents one of the four French suits
type Suit int8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", int8(s))
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card's face value label
type Rank int8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int8(r))
	}
	return "?"
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// New returns the card with the given suit and rank
func New(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Value returns the card's strength, 2 through 14
func (c Card) Value() int {
	return int(c.Rank)
}

// String returns the long form, e.g. "A of Spades"
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Code returns the short form, e.g. "AS" or "10H"
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.String()[:1]
}

// Parse parses a short card code such as "AS", "10h" or "qd".
// "T" is accepted for ten.
func Parse(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 || len(code) > 3 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}

	rankPart, suitPart := code[:len(code)-1], code[len(code)-1:]

	var s Suit
	switch suitPart {
	case "H":
		s = Hearts
	case "D":
		s = Diamonds
	case "C":
		s = Clubs
	case "S":
		s = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card code: %q", code)
	}

	if rankPart == "T" {
		rankPart = "10"
	}
	for _, r := range Ranks {
		if r.String() == rankPart {
			return New(s, r), nil
		}
	}

	return Card{}, fmt.Errorf("invalid rank in card code: %q", code)
}
