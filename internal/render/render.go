package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/highcard/internal/card"
)

// CardHeight and CardWidth are the dimensions of a rendered card in terminal cells
const (
	CardHeight = 7
	CardWidth  = 9
)

// pairGap separates two cards rendered side by side
const pairGap = "  "

// Renderer turns cards into styled text
type Renderer struct {
	palette *Palette
}

// New creates a renderer using the given palette
func New(p *Palette) *Renderer {
	return &Renderer{palette: p}
}

// Palette returns the renderer's palette
func (r *Renderer) Palette() *Palette {
	return r.palette
}

// SuitSymbol returns the glyph printed for a suit
func SuitSymbol(s card.Suit) string {
	switch s {
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	case card.Clubs:
		return "♣"
	case card.Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card renders a card as a boxed face, one string per line
func (r *Renderer) Card(c card.Card) []string {
	rank := c.Rank.String()
	style := r.palette.Card(c.Suit)

	lines := []string{
		"┌───────┐",
		fmt.Sprintf("│%-2s     │", rank),
		"│       │",
		fmt.Sprintf("│   %s   │", SuitSymbol(c.Suit)),
		"│       │",
		fmt.Sprintf("│     %2s│", rank),
		"└───────┘",
	}

	for i, line := range lines {
		lines[i] = style.Sprint(line)
	}
	return lines
}

// Pair renders two cards side by side
func (r *Renderer) Pair(a, b card.Card) string {
	left := r.Card(a)
	right := r.Card(b)

	var sb strings.Builder
	for i := range left {
		sb.WriteString(left[i])
		sb.WriteString(pairGap)
		sb.WriteString(right[i])
		sb.WriteString("\n")
	}
	return sb.String()
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' || c == 'J' || c == 'H' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Width returns the number of terminal cells a styled single-line string occupies
func Width(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}
