package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trackmatch/internal/match"
	"trackmatch/internal/spotify"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var artistOnly bool
	var candidatesFile string

	cmd := &cobra.Command{
		Use:   "match <title> <artist> [artist...]",
		Short: "Search the catalog and rank candidates for one song",
		Long: "Searches the catalog for the given song and ranks the hits.\n" +
			"With --candidates, skips the catalog search and ranks candidates\n" +
			"from a JSON file instead (no credentials needed).",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			matcher, err := ctx.buildMatcher()
			if err != nil {
				return err
			}

			title := args[0]
			artists := args[1:]

			var candidates []match.CandidateTrack
			if candidatesFile != "" {
				candidates, err = readCandidates(candidatesFile)
				if err != nil {
					return err
				}
			} else {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				searcher, err := ctx.buildSearcher()
				if err != nil {
					return err
				}
				query := spotify.BuildTrackQuery(title, artists)
				result, err := searcher.SearchTracks(cmd.Context(), query, ctx.searchOptions(cfg))
				if err != nil {
					return fmt.Errorf("search catalog: %w", err)
				}
				candidates = result.Candidates()
			}

			matches := matcher.Match(match.Query{
				Title:            title,
				Artists:          artists,
				ArtistOnlySearch: artistOnly,
			}, candidates)

			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				return printJSON(out, matches)
			}
			if len(matches) == 0 {
				fmt.Fprintf(out, "No match for %q by %s\n", title, strings.Join(artists, ", "))
				return nil
			}
			fmt.Fprintln(out, renderMatchTable(matches))
			return nil
		},
	}

	cmd.Flags().BoolVar(&artistOnly, "artist-only", false, "Treat the title as a placeholder and rank by artist alone")
	cmd.Flags().StringVar(&candidatesFile, "candidates", "", "JSON file with candidate tracks to rank instead of searching")
	return cmd
}

func readCandidates(path string) ([]match.CandidateTrack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	var candidates []match.CandidateTrack
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("parse candidates file %s: %w", path, err)
	}
	return candidates, nil
}

func renderMatchTable(matches []match.Match) string {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			m.Track.ID,
			m.Track.Title,
			strings.Join(m.Track.ArtistNames, ", "),
			fmt.Sprintf("%.1f", m.Score.Stage1WeightedScore),
			fmt.Sprintf("%+.1f", m.Score.BracketAdjustment),
			fmt.Sprintf("%.1f", m.Score.FinalScore),
			matchFlags(m.Score),
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Artists", "Stage 1", "Brackets", "Final", "Flags"},
		rows,
		3, 4, 5,
	)
}

func matchFlags(score match.SimilarityScore) string {
	var flags []string
	if score.LowConfidence {
		flags = append(flags, "low-confidence")
	}
	if score.UsedPhonetic {
		flags = append(flags, "phonetic")
	}
	return strings.Join(flags, ",")
}
