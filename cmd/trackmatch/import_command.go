package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trackmatch/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "import <playlist-file>",
		Short: "Match every line of a playlist file against the catalog",
		Long: "Reads a playlist with one song per line in the form\n" +
			"\"Title - Artist1 / Artist2\" and resolves each entry.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			matcher, err := ctx.buildMatcher()
			if err != nil {
				return err
			}
			searcher, err := ctx.buildSearcher()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open playlist: %w", err)
			}
			defer file.Close()

			entries, err := importer.ParseLines(file)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("playlist %s has no entries", args[0])
			}

			if workers < 1 {
				workers = cfg.Import.Workers
			}
			imp := importer.New(searcher, matcher, importer.Options{
				Workers: workers,
				Market:  cfg.Spotify.Market,
				Limit:   cfg.Spotify.SearchLimit,
			}, logger)

			results, summary := imp.Run(cmd.Context(), entries)

			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				return printJSON(out, struct {
					Summary importer.Summary  `json:"summary"`
					Results []importer.Result `json:"results"`
				}{summary, results})
			}

			fmt.Fprintln(out, renderImportTable(results))
			fmt.Fprintf(out, "Batch %s: %d matched, %d not found, %d api errors, %d format errors (%.1fs)\n",
				summary.BatchID, summary.Matched, summary.NotFound,
				summary.APIErrors, summary.FormatErrors, summary.Elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent lookups (defaults to the configured value)")
	return cmd
}

func renderImportTable(results []importer.Result) string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		matched := ""
		score := ""
		if result.Match != nil {
			matched = fmt.Sprintf("%s / %s", result.Match.Track.Title,
				strings.Join(result.Match.Track.ArtistNames, ", "))
			score = fmt.Sprintf("%.1f", result.Match.Score.FinalScore)
		} else if result.Error != "" {
			matched = result.Error
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", result.Line),
			result.Input,
			string(result.Status),
			matched,
			score,
		})
	}
	return renderTable(
		[]string{"Line", "Input", "Status", "Result", "Score"},
		rows,
		0, 4,
	)
}
