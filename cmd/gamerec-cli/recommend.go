package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	recommenduc "github.com/kailas-cloud/gamerec/internal/usecase/recommend"
)

var (
	recommendN           int
	recommendEngine      string
	recommendMaxFeatures int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend games by title or by features",
}

var recommendTitleCmd = &cobra.Command{
	Use:   "title [title]",
	Short: "Recommend games similar to a title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		return runRecommend(cmd, "input_game", title, func(ctx context.Context, svc *recommenduc.Service) []recommendation.Entry {
			return svc.ByTitle(ctx, title, recommendN)
		})
	},
}

var recommendFeaturesCmd = &cobra.Command{
	Use:   "features [text...]",
	Short: "Recommend games matching a free-text description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		return runRecommend(cmd, "input_features", text, func(ctx context.Context, svc *recommenduc.Service) []recommendation.Entry {
			return svc.ByFeatures(ctx, text, recommendN)
		})
	},
}

func init() {
	recommendCmd.PersistentFlags().IntVarP(&recommendN, "top-n", "n", recommendation.DefaultTopN, "number of recommendations")
	recommendCmd.PersistentFlags().StringVar(&recommendEngine, "engine", string(recommenduc.StrategyAuto),
		"engine selection: auto, vector or keyword")
	recommendCmd.PersistentFlags().IntVar(&recommendMaxFeatures, "max-features",
		recommenduc.DefaultIndexConfig().MaxFeatures, "vocabulary size limit (0 = unlimited)")

	recommendCmd.AddCommand(recommendTitleCmd)
	recommendCmd.AddCommand(recommendFeaturesCmd)
}

func runRecommend(
	cmd *cobra.Command, inputKey, input string,
	query func(ctx context.Context, svc *recommenduc.Service) []recommendation.Entry,
) error {
	if input == "" {
		return errors.New("query must not be blank")
	}
	if recommendN < 0 {
		return fmt.Errorf("-n must be a non-negative integer, got %d", recommendN)
	}
	strategy := recommenduc.Strategy(recommendEngine)
	if !strategy.IsValid() {
		return fmt.Errorf("unknown engine %q", recommendEngine)
	}

	a, ctx, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := recommenduc.DefaultIndexConfig()
	cfg.MaxFeatures = recommendMaxFeatures
	svc, sel, err := recommenduc.Build(ctx, a.repo, strategy, cfg)
	if err != nil {
		return err
	}
	if sel.FallbackReason != nil {
		a.logger.Warn("vector engine unavailable, using keyword fallback", zap.Error(sel.FallbackReason))
	}

	entries := query(ctx, svc)
	return printJSON(cmd, map[string]any{
		inputKey:          input,
		"engine":          svc.Engine(),
		"count":           len(entries),
		"recommendations": toEntriesOut(entries),
	})
}
