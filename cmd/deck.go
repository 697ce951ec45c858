package cmd

import (
	"fmt"

	"github.com/arcanaland/highcard/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List the cards of a deck in dealing order",
	Long: `Deck prints every card of a fresh deck, one per line, in the order
they would be dealt. Use --shuffle to shuffle first, and --seed to make the
shuffle reproducible (the same seed gives the same order as 'highcard --seed').`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deck.Build()

		shuffle, _ := cmd.Flags().GetBool("shuffle")
		if shuffle || cmd.Flags().Changed("seed") {
			src, err := sourceFromFlags(cmd, newLogger(cmd))
			if err != nil {
				return err
			}
			deck.Shuffle(d, src)
		}

		if err := deck.Validate(d); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, pair := range d.Pairs() {
			fmt.Fprintf(out, "%2d. %-3s vs %-3s  (%s vs %s)\n",
				i+1, pair[0].Code(), pair[1].Code(), pair[0], pair[1])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().Bool("shuffle", false, "Shuffle the deck before listing it")
	deckCmd.Flags().Uint64("seed", 0, "Shuffle deterministically with this seed")
}
