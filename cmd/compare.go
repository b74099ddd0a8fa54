package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hakem-ai/compare-cli/internal/model"
	"github.com/hakem-ai/compare-cli/internal/quotes"
)

var compareOut string

var compareCmd = &cobra.Command{
	Use:   "compare [quote-file...]",
	Short: "Rank and compare insurance quotes from JSON or YAML files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		engine := newEngine(store)

		results := make([]*model.ComparisonResult, len(args))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrentFiles)

		for i, path := range args {
			g.Go(func() error {
				qs, err := quotes.Load(path)
				if err != nil {
					return eris.Wrapf(err, "load %s", path)
				}

				result, err := engine.RankAndCompare(gctx, qs)
				if err != nil {
					return eris.Wrapf(err, "compare %s", path)
				}
				results[i] = result

				zap.L().Info("file compared",
					zap.String("file", path),
					zap.Int("quotes", result.TotalQuotes),
					zap.String("comparison_id", result.ComparisonID),
				)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		return writeResults(args, results)
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "", "output file (single input) or directory (multiple inputs); stdout when empty")
	rootCmd.AddCommand(compareCmd)
}

// fileResult pairs a comparison with the input file it came from, for
// multi-file stdout output.
type fileResult struct {
	File       string                  `json:"file"`
	Comparison *model.ComparisonResult `json:"comparison"`
}

func writeResults(files []string, results []*model.ComparisonResult) error {
	if compareOut == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return eris.Wrap(enc.Encode(results[0]), "cmd: encode result")
		}
		paired := make([]fileResult, len(results))
		for i, r := range results {
			paired[i] = fileResult{File: files[i], Comparison: r}
		}
		return eris.Wrap(enc.Encode(paired), "cmd: encode results")
	}

	if len(results) == 1 {
		return writeResultFile(compareOut, results[0])
	}

	if err := os.MkdirAll(compareOut, 0o755); err != nil {
		return eris.Wrap(err, "cmd: create output dir")
	}
	for i, r := range results {
		base := filepath.Base(files[i])
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".comparison.json"
		if err := writeResultFile(filepath.Join(compareOut, base), r); err != nil {
			return err
		}
	}
	return nil
}

func writeResultFile(path string, result *model.ComparisonResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return eris.Wrap(err, "cmd: marshal result")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return eris.Wrapf(err, "cmd: write %s", path)
	}
	zap.L().Info("result written", zap.String("path", path))
	return nil
}
