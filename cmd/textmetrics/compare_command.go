package main

import (
	"errors"
	"fmt"

	"github.com/baditaflorin/go_text_metrics/pkg/similarity"
	"github.com/spf13/cobra"
)

type compareOutput struct {
	Score        float64 `json:"score"`
	Percent      float64 `json:"percent"`
	Passed       bool    `json:"passed"`
	Threshold    float64 `json:"threshold"`
	TokensA      int     `json:"tokens_a"`
	TokensB      int     `json:"tokens_b"`
	Intersection int     `json:"intersection"`
	Union        int     `json:"union"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var textA, textB string
	var fileA, fileB string
	var threshold float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Score the word overlap of two texts",
		Long:  "Score two texts by the Jaccard index of their lowercase whitespace-separated word sets. 1 means the same set of words, 0 means no shared word.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := compareInput(cmd, "a", &textA, fileA)
			if err != nil {
				return err
			}
			b, err := compareInput(cmd, "b", &textB, fileB)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Metrics.SimilarityThreshold
			}

			logger, err := ctx.loggerFor(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts := []similarity.SimilarityOption{
				similarity.WithThreshold(threshold),
				similarity.WithPrecision(cfg.Metrics.Precision),
				similarity.WithLogger(logger),
			}
			if cfg.Metrics.FastNormalizer {
				opts = append(opts, similarity.WithFastNormalizer())
			}
			calc, err := similarity.New(opts...)
			if err != nil {
				return fmt.Errorf("similarity: %w", err)
			}

			result := calc.Compute(cmd.Context(), a, b)
			if ctx.jsonOutput() {
				return writeJSON(cmd, compareOutput{
					Score:        result.Score,
					Percent:      result.Score * 100,
					Passed:       result.Passed,
					Threshold:    result.Threshold,
					TokensA:      result.TokensA,
					TokensB:      result.TokensB,
					Intersection: result.Intersection,
					Union:        result.Union,
				})
			}

			verdict := "below threshold"
			if result.Passed {
				verdict = "at or above threshold"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderKeyValues(out, [2]string{"Metric", "Value"}, [][2]string{
				{"Similarity", formatPercent(result.Score)},
				{"Threshold", formatPercent(result.Threshold)},
				{"Verdict", verdict},
				{"Unique words (A)", formatCount(result.TokensA)},
				{"Unique words (B)", formatCount(result.TokensB)},
				{"Shared words", formatCount(result.Intersection)},
				{"All words", formatCount(result.Union)},
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&textA, "a", "", "First text")
	cmd.Flags().StringVar(&textB, "b", "", "Second text")
	cmd.Flags().StringVar(&fileA, "a-file", "", "File holding the first text")
	cmd.Flags().StringVar(&fileB, "b-file", "", "File holding the second text")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.7, "Similarity reported as at or above threshold (0.0-1.0)")

	return cmd
}

// compareInput resolves one side of a comparison from --<side> or --<side>-file.
func compareInput(cmd *cobra.Command, side string, text *string, file string) (string, error) {
	inline := cmd.Flags().Changed(side)
	if inline && file != "" {
		return "", fmt.Errorf("use either --%s or --%s-file, not both", side, side)
	}
	if inline {
		return readInput(text, "", nil)
	}
	if file == "" {
		return "", errors.New("missing text " + side + ": set --" + side + " or --" + side + "-file")
	}
	if file == "-" {
		return readInput(nil, file, cmd.InOrStdin())
	}
	return readInput(nil, file, nil)
}
