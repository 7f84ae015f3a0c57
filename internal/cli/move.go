package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

func newMoveCmds() []*cobra.Command {
	return []*cobra.Command{
		newPlaceCmd(),
		newGameActionCmd("undo", "Take back the last placed tile", "/undo"),
		newGameActionCmd("recall", "Return every placed tile to the rack", "/recall"),
		newSubmitCmd(),
		newGameActionCmd("reset", "Clear the board and return all tiles to the bag", "/reset"),
	}
}

// newGameActionCmd builds a command that posts to a game endpoint with no
// body and prints the resulting state
func newGameActionCmd(use, short, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := gamePath(suffix)
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			printGame(cmd, result)
			return nil
		},
	}
}

func newPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <tile-id> <row> <col> [letter]",
		Short: "Place a tile from your rack (blanks need a letter)",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, 3)
			for i, name := range []string{"tile id", "row", "col"} {
				n, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("%s must be a number", name)
				}
				nums[i] = n
			}

			req := request.PlaceRequest{TileID: nums[0], Row: nums[1], Col: nums[2]}
			if len(args) == 4 {
				req.Letter = args[3]
			}

			path, err := gamePath("/place")
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			printGame(cmd, result)
			return nil
		},
	}
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the placed tiles as a move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := gamePath("/submit")
			if err != nil {
				return err
			}

			var result response.SubmitResponse
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}
