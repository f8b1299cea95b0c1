package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search games by title, genre or description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")

		a, ctx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		games, err := a.catalog.Search(ctx, term)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]any{
			"search_term": term,
			"count":       len(games),
			"results":     toGamesOut(games),
		})
	},
}
