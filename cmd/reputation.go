package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hakem-ai/compare-cli/internal/model"
	"github.com/hakem-ai/compare-cli/internal/reputation"
)

var reputationCmd = &cobra.Command{
	Use:   "reputation",
	Short: "Manage the insurer reputation store",
}

var reputationSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in insurer reputation records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := reputation.Seed(ctx, store)
		if err != nil {
			return eris.Wrap(err, "seed store")
		}

		zap.L().Info("seed complete", zap.Int("records", count))
		return nil
	},
}

var reputationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reputation records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(ctx)
		if err != nil {
			return eris.Wrap(err, "list records")
		}

		fmt.Printf("%-5s %-35s %-6s %-12s %s\n", "RANK", "COMPANY", "SCORE", "TIER", "ALIASES")
		for _, rec := range records {
			fmt.Printf("%-5d %-35s %-6.2f %-12s %s\n",
				rec.Rank, rec.CompanyName, rec.Score, rec.Tier, strings.Join(rec.Aliases, "; "))
		}
		return nil
	},
}

var (
	reputationSetTier    string
	reputationSetRank    int
	reputationSetAliases []string
)

var reputationSetCmd = &cobra.Command{
	Use:   "set <company> <score>",
	Short: "Create or update a reputation record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return eris.Wrapf(err, "parse score %q", args[1])
		}
		if score < 0 || score > 1 {
			return eris.Errorf("score %.2f out of range [0, 1]", score)
		}

		tier := model.Tier(reputationSetTier)
		if tier == "" {
			tier = model.TierFromScore(score)
		}

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		rec := model.ReputationRecord{
			CompanyName: args[0],
			Score:       score,
			Tier:        tier,
			Rank:        reputationSetRank,
			Aliases:     reputationSetAliases,
		}
		if err := store.Upsert(ctx, rec); err != nil {
			return eris.Wrapf(err, "upsert %s", args[0])
		}

		zap.L().Info("record saved",
			zap.String("company", rec.CompanyName),
			zap.Float64("score", rec.Score),
			zap.String("tier", string(rec.Tier)),
		)
		return nil
	},
}

var reputationDeleteCmd = &cobra.Command{
	Use:   "delete <company>",
	Short: "Delete a reputation record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(ctx, args[0]); err != nil {
			return eris.Wrapf(err, "delete %s", args[0])
		}

		zap.L().Info("record deleted", zap.String("company", args[0]))
		return nil
	},
}

var reputationImportCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import reputation records from an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := reputation.ImportXLSX(ctx, store, args[0])
		if err != nil {
			return eris.Wrapf(err, "import %s", args[0])
		}

		zap.L().Info("import complete",
			zap.Int("records", count),
			zap.String("file", args[0]),
		)
		return nil
	},
}

func init() {
	reputationSetCmd.Flags().StringVar(&reputationSetTier, "tier", "", "tier label (derived from score when empty)")
	reputationSetCmd.Flags().IntVar(&reputationSetRank, "rank", 0, "market rank")
	reputationSetCmd.Flags().StringSliceVar(&reputationSetAliases, "aliases", nil, "alternate company names")

	reputationCmd.AddCommand(reputationSeedCmd, reputationListCmd, reputationSetCmd, reputationDeleteCmd, reputationImportCmd)
	rootCmd.AddCommand(reputationCmd)
}
