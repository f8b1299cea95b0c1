package main

import "github.com/spf13/cobra"

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the deduplicated catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, ctx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		games, err := a.catalog.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]any{
			"count": len(games),
			"games": toGamesOut(games),
		})
	},
}
