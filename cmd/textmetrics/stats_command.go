package main

import (
	"fmt"

	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	"github.com/baditaflorin/go_text_metrics/pkg/statistics"
	"github.com/spf13/cobra"
)

type statsOutput struct {
	domain.TextStatistics
	ReadingMinutes int     `json:"reading_minutes"`
	WordsPerMinute float64 `json:"words_per_minute"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var text string
	var wpm float64

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Count characters, words, sentences and paragraphs",
		Long:  "Count characters, words, sentences and paragraphs of a file, --text, or stdin (\"-\" or no argument), and estimate the reading time.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var inline *string
			if cmd.Flags().Changed("text") {
				inline = &text
			}
			path := ""
			if len(args) == 1 {
				if inline != nil {
					return fmt.Errorf("use either a file argument or --text, not both")
				}
				path = args[0]
			}
			input, err := readInput(inline, path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("wpm") {
				wpm = cfg.Metrics.WordsPerMinute
			}

			logger, err := ctx.loggerFor(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			calc, err := statistics.New(
				statistics.WithWordsPerMinute(wpm),
				statistics.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("statistics: %w", err)
			}

			stats := calc.Compute(cmd.Context(), input)
			if ctx.jsonOutput() {
				return writeJSON(cmd, statsOutput{
					TextStatistics: stats,
					ReadingMinutes: stats.ReadingTime.Minutes,
					WordsPerMinute: calc.WordsPerMinute(),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderKeyValues(out, [2]string{"Metric", "Value"}, [][2]string{
				{"Characters", formatCount(stats.CharacterCount)},
				{"Characters (no spaces)", formatCount(stats.CharacterCountNoSpaces)},
				{"Words", formatCount(stats.WordCount)},
				{"Sentences", formatCount(stats.SentenceCount)},
				{"Paragraphs", formatCount(stats.ParagraphCount)},
				{"Reading time", stats.ReadingTime.String()},
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to analyze instead of a file")
	cmd.Flags().Float64Var(&wpm, "wpm", statistics.DefaultWordsPerMinute, "Reading speed in words per minute")

	return cmd
}
