package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scrabble",
		Short: "CLI tool for the Scrabble game API",
		Long: `scrabble is a CLI tool for playing games through the Scrabble JSON API.

Tiles are placed one at a time by tile ID, then submitted as a move. The
last game created or selected is remembered, so --game can usually be
left out.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load current game from file if not provided via flag/env
			if err := cfg.LoadGame(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCRABBLE_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Game, "game", "g", cfg.Game, "Game ID (env: SCRABBLE_GAME)")
	rootCmd.PersistentFlags().StringVar(&cfg.StateFile, "state-file", cfg.StateFile, "File remembering the current game (env: SCRABBLE_STATE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newMoveCmds()...)
	rootCmd.AddCommand(newExchangeCmd())
	rootCmd.AddCommand(newWordCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
