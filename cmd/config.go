package cmd

import (
	"fmt"

	"github.com/arcanaland/highcard/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the highcard config file",
	Long: `Commands for managing the highcard config file.

Settings are read from the config file, then from a .env file in the current
directory, then from HIGHCARD_* environment variables. Flags win over all three.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.WriteDefault()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
