package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
)

func newWordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <word>",
		Short: "Check a word against the server's dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordValidation
			if err := client.Post("/api/v1/dictionary/validate", request.ValidateWordRequest{Word: args[0]}, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "premiums",
		Short: "List the premium squares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Premiums
			if err := client.Get("/api/v1/board/premiums", &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
