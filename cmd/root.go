package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/arcanaland/highcard/internal/config"
	"github.com/arcanaland/highcard/internal/console"
	"github.com/arcanaland/highcard/internal/deck"
	"github.com/arcanaland/highcard/internal/game"
	"github.com/arcanaland/highcard/internal/render"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "highcard",
	Short: "Two-player high card game for the terminal",
	Long: `Highcard deals a shuffled 52-card deck two cards at a time.
The higher card wins both cards' worth of points, ties split them,
and the player with the most points once the deck runs out wins.

Run it with no arguments to start a game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		logger := newLogger(cmd)

		src, err := sourceFromFlags(cmd, logger)
		if err != nil {
			return err
		}

		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
			ClearScreen: cfg.ClearScreen,
		})

		mode, err := render.ParseMode(cfg.Color)
		if err != nil {
			return err
		}
		if mode == render.Auto && !con.IsTerminal() {
			mode = render.Never
		}

		g := game.New(con, render.New(render.NewPalette(mode)), game.Options{
			Source:    src,
			PlayerOne: cfg.PlayerOne,
			PlayerTwo: cfg.PlayerTwo,
			Logger:    logger,
		})

		if _, err := g.Play(); err != nil {
			return fmt.Errorf("game aborted: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.Flags().Uint64("seed", 0, "Shuffle deterministically with this seed")
	RootCmd.Flags().Bool("no-clear", false, "Do not clear the screen between hands")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().Bool("debug", false, "Log game events to stderr")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings loads the config and applies command-line overrides
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = render.Never.String()
	}
	if noClear, _ := cmd.Flags().GetBool("no-clear"); noClear {
		cfg.ClearScreen = false
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return log.New(cmd.ErrOrStderr(), "highcard: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// sourceFromFlags returns a seeded source when --seed was given, otherwise a random one
func sourceFromFlags(cmd *cobra.Command, logger *log.Logger) (deck.Source, error) {
	if !cmd.Flags().Changed("seed") {
		logger.Printf("shuffling with a random seed")
		return deck.RandomSource(), nil
	}

	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, err
	}
	logger.Printf("shuffling with seed %d", seed)
	return deck.NewSource(seed), nil
}
