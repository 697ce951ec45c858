package game

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/arcanaland/highcard/internal/console"
	"github.com/arcanaland/highcard/internal/deck"
	"github.com/arcanaland/highcard/internal/render"
)

const (
	DefaultPlayerOne = "Player 1"
	DefaultPlayerTwo = "Player 2"

	continuePrompt = "Press Enter to continue..."
)

// Options configures a game
type Options struct {
	// Source drives the shuffle; a random source is used when nil
	Source deck.Source

	PlayerOne string
	PlayerTwo string

	Logger *log.Logger
}

// Result is the outcome of a finished game
type Result struct {
	Score  Score
	Winner Outcome
	Hands  int
}

// Game runs one game of high card between two players
type Game struct {
	console  *console.Console
	renderer *render.Renderer
	opts     Options
}

// New creates a game that talks to the player through c and draws cards with r
func New(c *console.Console, r *render.Renderer, opts Options) *Game {
	if opts.Source == nil {
		opts.Source = deck.RandomSource()
	}
	if opts.PlayerOne == "" {
		opts.PlayerOne = DefaultPlayerOne
	}
	if opts.PlayerTwo == "" {
		opts.PlayerTwo = DefaultPlayerTwo
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	return &Game{
		console:  c,
		renderer: r,
		opts:     opts,
	}
}

// Play shows the welcome screen, shuffles a fresh deck and deals it out
func (g *Game) Play() (Result, error) {
	g.welcome()
	if err := g.console.WaitForEnter(continuePrompt); err != nil {
		return Result{}, err
	}

	d := deck.Shuffle(deck.Build(), g.opts.Source)
	if err := deck.Validate(d); err != nil {
		return Result{}, fmt.Errorf("error preparing deck: %w", err)
	}

	return g.Deal(d)
}

// Deal plays every hand in d, two cards at a time, then shows the final scores
func (g *Game) Deal(d deck.Deck) (Result, error) {
	p := g.renderer.Palette()
	var score Score

	pairs := d.Pairs()
	for i, pair := range pairs {
		a, b := pair[0], pair[1]

		g.console.Clear()
		g.console.Println(p.Header.Sprintf("Hand %d:", i+1))
		g.console.Print(g.indent(g.renderer.Pair(a, b)))
		g.console.Println(p.PlayerOne.Sprintf("%s: %s", g.opts.PlayerOne, a))
		g.console.Println(p.PlayerTwo.Sprintf("%s: %s", g.opts.PlayerTwo, b))

		outcome := Compare(a, b)
		score = score.Award(outcome)
		g.opts.Logger.Printf("hand %d: %s vs %s, %s (score %d-%d)", i+1, a.Code(), b.Code(), outcome, score.One, score.Two)

		switch outcome {
		case FirstWins:
			g.console.Println(p.PlayerOne.Sprintf("%s wins the hand.", g.opts.PlayerOne))
		case SecondWins:
			g.console.Println(p.PlayerTwo.Sprintf("%s wins the hand.", g.opts.PlayerTwo))
		default:
			g.console.Println(p.Tie.Sprint("Tie! Both players get 1 point."))
		}
		g.console.Println()

		if err := g.console.WaitForEnter(continuePrompt); err != nil {
			return Result{Score: score, Winner: score.Leader(), Hands: i + 1}, err
		}
	}

	result := Result{Score: score, Winner: score.Leader(), Hands: len(pairs)}
	g.gameOver(result)
	g.opts.Logger.Printf("game over after %d hands: %d-%d, %s", result.Hands, score.One, score.Two, result.Winner)

	return result, nil
}

func (g *Game) welcome() {
	p := g.renderer.Palette()

	g.console.Clear()
	g.console.Println(p.Title.Sprint("Welcome to the 2-Player Card Game!"))
	g.console.Println(p.Rules.Sprint("Each player is dealt a card. The highest card wins the hand and gets both cards."))
	g.console.Println(p.Rules.Sprintf("The process repeats until all %d cards are dealt.", deck.Size))
	g.console.Println(p.Rules.Sprint("The player with the highest score at the end wins the game."))
	g.console.Println(p.Prompt.Sprint("Press Enter after each hand to continue."))
	g.console.Println()
}

func (g *Game) gameOver(r Result) {
	p := g.renderer.Palette()

	g.console.Clear()
	g.console.Println(p.GameOver.Sprint("Game Over!"))
	g.console.Println(p.PlayerOne.Sprintf("%s Score: %d", g.opts.PlayerOne, r.Score.One))
	g.console.Println(p.PlayerTwo.Sprintf("%s Score: %d", g.opts.PlayerTwo, r.Score.Two))

	switch r.Winner {
	case FirstWins:
		g.console.Println(p.PlayerOne.Sprintf("%s wins the game!", g.opts.PlayerOne))
	case SecondWins:
		g.console.Println(p.PlayerTwo.Sprintf("%s wins the game!", g.opts.PlayerTwo))
	default:
		g.console.Println(p.Tie.Sprint("The game is a tie!"))
	}
}

// indent centers a rendered block in the terminal
func (g *Game) indent(block string) string {
	width := g.console.Width()
	pairWidth := 2*render.CardWidth + 2
	if width <= pairWidth {
		return block
	}

	pad := strings.Repeat(" ", (width-pairWidth)/2)
	lines := strings.SplitAfter(block, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		sb.WriteString(pad)
		sb.WriteString(line)
	}
	return sb.String()
}
