package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

var errNoGame = errors.New("no game selected: pass --game or run 'scrabble game new'")

// gamePath builds an API path under the current game
func gamePath(suffix string) (string, error) {
	if cfg.Game == "" {
		return "", errNoGame
	}
	return fmt.Sprintf("/api/v1/games/%s%s", cfg.Game, suffix), nil
}

// printGame renders a game state in the configured format
func printGame(cmd *cobra.Command, state response.GameState) {
	NewOutput(cmd.OutOrStdout(), cfg.Output).Print(state)
}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameUseCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameSummaryCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "new [player...]",
		Short: "Start a new game (four players if none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{Players: args}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			var result response.GameState
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveGame(result.ID); err != nil {
				return err
			}

			printGame(cmd, result)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible tile bag")
	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList
			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Select the game later commands act on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState
			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}
			if err := cfg.SaveGame(result.ID); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).PrintMessage(fmt.Sprintf("Using game %s", result.ID))
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the board, racks and scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := gamePath("")
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Get(path, &result); err != nil {
				return err
			}

			printGame(cmd, result)
			return nil
		},
	}
}

func newGameSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := gamePath("/summary")
			if err != nil {
				return err
			}

			var result response.Summary
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the current game",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := gamePath("")
			if err != nil {
				return err
			}

			if err := client.Delete(path); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).PrintMessage(fmt.Sprintf("Deleted game %s", cfg.Game))
			return nil
		},
	}
}
