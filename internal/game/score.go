package game

import "github.com/arcanaland/highcard/internal/card"

// Points awarded for a hand: the winner takes both cards, a tie splits them
const (
	winPoints = 2
	tiePoints = 1
)

// Outcome is the result of comparing two cards, or of a whole game
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	}
	return "tie"
}

// Compare compares two cards by value; suits never matter
func Compare(a, b card.Card) Outcome {
	switch {
	case a.Value() > b.Value():
		return FirstWins
	case b.Value() > a.Value():
		return SecondWins
	}
	return Tie
}

// Score holds each player's points
type Score struct {
	One int
	Two int
}

// Award returns the score after a hand with the given outcome
func (s Score) Award(o Outcome) Score {
	switch o {
	case FirstWins:
		s.One += winPoints
	case SecondWins:
		s.Two += winPoints
	default:
		s.One += tiePoints
		s.Two += tiePoints
	}
	return s
}

// Total returns the points handed out so far
func (s Score) Total() int {
	return s.One + s.Two
}

// Leader returns which player has strictly more points, or Tie
func (s Score) Leader() Outcome {
	switch {
	case s.One > s.Two:
		return FirstWins
	case s.Two > s.One:
		return SecondWins
	}
	return Tie
}
