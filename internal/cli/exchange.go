package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

func newExchangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Swap rack tiles with the bag instead of playing",
	}

	cmd.AddCommand(newGameActionCmd("start", "Enter exchange mode", "/exchange"))
	cmd.AddCommand(newExchangeToggleCmd())
	cmd.AddCommand(newExchangeCommitCmd())
	cmd.AddCommand(newGameActionCmd("cancel", "Leave exchange mode without swapping", "/exchange/cancel"))

	return cmd
}

func newExchangeToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <tile-id>",
		Short: "Mark or unmark a rack tile for exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tile id must be a number")
			}

			path, err := gamePath("/exchange/toggle")
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Post(path, request.ToggleExchangeRequest{TileID: id}, &result); err != nil {
				return err
			}

			printGame(cmd, result)
			return nil
		},
	}
}

func newExchangeCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Swap the marked tiles and end the turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := gamePath("/exchange/commit")
			if err != nil {
				return err
			}

			var result response.ExchangeResponse
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}
