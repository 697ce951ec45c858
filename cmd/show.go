package cmd

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/highcard/internal/card"
	"github.com/arcanaland/highcard/internal/console"
	"github.com/arcanaland/highcard/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a single card",
	Long: `Show draws one card the way it appears during a game, with its details
alongside. Cards are given as a rank followed by a suit letter.

Examples:
  highcard show AS
  highcard show 10h
  highcard show qd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		con := console.New(cmd.InOrStdin(), out, console.Options{})

		mode, err := render.ParseMode(cfg.Color)
		if err != nil {
			return err
		}
		if mode == render.Auto && !con.IsTerminal() {
			mode = render.Never
		}

		displayCard(out, render.New(render.NewPalette(mode)), c, mode)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard prints the card face with its details to the right
func displayCard(out io.Writer, r *render.Renderer, c card.Card, mode render.Mode) {
	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)
	for _, style := range []*colorize.Color{label, value} {
		switch mode {
		case render.Always:
			style.EnableColor()
		case render.Never:
			style.DisableColor()
		}
	}

	cardLines := r.Card(c)
	infoLines := []string{
		"",
		label.Sprint("Card:  ") + value.Sprint(c.String()),
		label.Sprint("Code:  ") + value.Sprint(c.Code()),
		label.Sprint("Suit:  ") + value.Sprintf("%s · %s", c.Suit, render.SuitSymbol(c.Suit)),
		label.Sprint("Rank:  ") + value.Sprint(c.Rank),
		label.Sprint("Value: ") + value.Sprintf("%d", c.Value()),
	}

	spacing := 4

	fmt.Fprintln(out)
	for i := 0; i < max(len(cardLines), len(infoLines)); i++ {
		// Print 2-character wide left padding
		fmt.Fprint(out, "  ")
		if i < len(cardLines) {
			fmt.Fprint(out, cardLines[i])
		} else {
			fmt.Fprint(out, strings.Repeat(" ", render.CardWidth))
		}
		if i < len(infoLines) && infoLines[i] != "" {
			fmt.Fprint(out, strings.Repeat(" ", spacing))
			fmt.Fprint(out, infoLines[i])
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}
