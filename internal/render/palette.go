package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/arcanaland/highcard/internal/card"
)

// Mode selects when ANSI styling is emitted
type Mode int

const (
	// Auto leaves the decision to color's own terminal detection
	Auto Mode = iota
	Always
	Never
)

func (m Mode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	}
	return "auto"
}

// ParseMode parses "auto", "always" or "never"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return Auto, fmt.Errorf("unknown color mode: %s (want auto, always or never)", s)
}

// Palette holds the styles used for game text and card faces
type Palette struct {
	Title     *color.Color
	Rules     *color.Color
	Prompt    *color.Color
	Header    *color.Color
	PlayerOne *color.Color
	PlayerTwo *color.Color
	Tie       *color.Color
	GameOver  *color.Color

	RedCard   *color.Color
	BlackCard *color.Color
}

// NewPalette returns the default palette with styling forced on or off according to mode
func NewPalette(mode Mode) *Palette {
	p := &Palette{
		Title:     color.New(color.FgCyan),
		Rules:     color.New(color.FgYellow),
		Prompt:    color.New(color.FgMagenta),
		Header:    color.New(color.Bold),
		PlayerOne: color.New(color.FgBlue),
		PlayerTwo: color.New(color.FgGreen),
		Tie:       color.New(color.FgYellow),
		GameOver:  color.New(color.FgMagenta),
		RedCard:   CardColor(card.Hearts),
		BlackCard: CardColor(card.Spades),
	}

	for _, c := range p.all() {
		switch mode {
		case Always:
			c.EnableColor()
		case Never:
			c.DisableColor()
		}
	}

	return p
}

func (p *Palette) all() []*color.Color {
	return []*color.Color{
		p.Title, p.Rules, p.Prompt, p.Header,
		p.PlayerOne, p.PlayerTwo, p.Tie, p.GameOver,
		p.RedCard, p.BlackCard,
	}
}

// Card returns the face style for a suit
func (p *Palette) Card(s card.Suit) *color.Color {
	if s.Red() {
		return p.RedCard
	}
	return p.BlackCard
}

// CardColor returns a new face style for a suit: red or black on white
func CardColor(s card.Suit) *color.Color {
	if s.Red() {
		return color.New(color.BgWhite, color.FgRed)
	}
	return color.New(color.BgWhite, color.FgBlack)
}
