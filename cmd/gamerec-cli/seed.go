package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/dataset"
)

var (
	seedFile            string
	seedAllowDuplicates bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert games from a YAML or JSON dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		games, err := dataset.Load(seedFile)
		if err != nil {
			return err
		}

		a, ctx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.catalog.Seed(ctx, games, seedAllowDuplicates)
		if err != nil {
			return err
		}
		a.logger.Info("seed completed",
			zap.String("file", seedFile),
			zap.Int("inserted", res.Inserted),
			zap.Int("skipped", res.Skipped),
		)
		return printJSON(cmd, map[string]any{
			"file":     seedFile,
			"inserted": res.Inserted,
			"skipped":  res.Skipped,
		})
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "data/games.yaml", "dataset file (.yaml, .yml or .json)")
	seedCmd.Flags().BoolVar(&seedAllowDuplicates, "allow-duplicates", false, "insert titles that already exist")
}
