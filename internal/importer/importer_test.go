package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"trackmatch/internal/match"
	"trackmatch/internal/spotify"
)

// catalogSearcher serves canned results keyed by the query string.
type catalogSearcher struct {
	responses map[string]*spotify.SearchResult
	err       error
}

func (c *catalogSearcher) SearchTracks(ctx context.Context, query string, opts spotify.SearchOptions) (*spotify.SearchResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	if result, ok := c.responses[query]; ok {
		return result, nil
	}
	return &spotify.SearchResult{}, nil
}

func trackResult(id, name string, artists ...string) *spotify.SearchResult {
	track := spotify.Track{ID: id, Name: name}
	for i, artist := range artists {
		track.Artists = append(track.Artists, spotify.Artist{ID: fmt.Sprintf("a%d", i), Name: artist})
	}
	return &spotify.SearchResult{Total: 1, Tracks: []spotify.Track{track}}
}

func newTestImporter(t *testing.T, searcher spotify.Searcher, workers int) *Importer {
	t.Helper()
	matcher, err := match.New(match.DefaultConfiguration(), nil)
	if err != nil {
		t.Fatalf("match.New: %v", err)
	}
	return New(searcher, matcher, Options{Workers: workers, Market: "US", Limit: 10}, nil)
}

func TestRunMixedBatch(t *testing.T) {
	searcher := &catalogSearcher{responses: map[string]*spotify.SearchResult{
		spotify.BuildTrackQuery("Midnight City", []string{"M83"}): trackResult(
			"t1", "Midnight City", "M83"),
	}}
	imp := newTestImporter(t, searcher, 3)

	entries, err := ParseLines(strings.NewReader(strings.Join([]string{
		"1. Midnight City - M83",
		"2. Unknown Song - Unknown Artist",
		"this line is broken",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	results, summary := imp.Run(context.Background(), entries)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Status != StatusMatched {
		t.Fatalf("first entry status %q, want matched", results[0].Status)
	}
	if results[0].Match == nil || results[0].Match.Track.ID != "t1" {
		t.Fatalf("unexpected match for first entry: %+v", results[0].Match)
	}
	if results[1].Status != StatusNotFound {
		t.Fatalf("second entry status %q, want not_found", results[1].Status)
	}
	if results[2].Status != StatusInputFormatError {
		t.Fatalf("third entry status %q, want input_format_error", results[2].Status)
	}

	if summary.BatchID == "" {
		t.Fatal("expected a batch id")
	}
	if summary.Total != 3 || summary.Matched != 1 || summary.NotFound != 1 || summary.FormatErrors != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRunReportsAPIErrors(t *testing.T) {
	searcher := &catalogSearcher{err: errors.New("service unavailable")}
	imp := newTestImporter(t, searcher, 2)

	entries := []Entry{
		{Line: 1, Raw: "Song - Artist", Title: "Song", Artists: []string{"Artist"}},
	}
	results, summary := imp.Run(context.Background(), entries)
	if results[0].Status != StatusAPIError {
		t.Fatalf("status %q, want api_error", results[0].Status)
	}
	if results[0].Error == "" {
		t.Fatal("expected an error message")
	}
	if summary.APIErrors != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRunPreservesInputOrder(t *testing.T) {
	responses := make(map[string]*spotify.SearchResult)
	var entries []Entry
	for i := 0; i < 20; i++ {
		title := fmt.Sprintf("Song %02d", i)
		responses[spotify.BuildTrackQuery(title, []string{"Artist"})] = trackResult(
			fmt.Sprintf("t%02d", i), title, "Artist")
		entries = append(entries, Entry{
			Line:    i + 1,
			Raw:     title + " - Artist",
			Title:   title,
			Artists: []string{"Artist"},
		})
	}

	imp := newTestImporter(t, &catalogSearcher{responses: responses}, 4)
	results, summary := imp.Run(context.Background(), entries)
	if summary.Matched != 20 {
		t.Fatalf("matched %d, want 20", summary.Matched)
	}
	for i, result := range results {
		if result.Line != i+1 {
			t.Fatalf("result %d has line %d, want %d", i, result.Line, i+1)
		}
		wantID := fmt.Sprintf("t%02d", i)
		if result.Match == nil || result.Match.Track.ID != wantID {
			t.Fatalf("result %d matched %v, want track %s", i, result.Match, wantID)
		}
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	imp := newTestImporter(t, &catalogSearcher{}, 1)
	entries := []Entry{
		{Line: 1, Raw: "Song - Artist", Title: "Song", Artists: []string{"Artist"}},
	}
	results, _ := imp.Run(ctx, entries)
	if results[0].Status != StatusAPIError {
		t.Fatalf("status %q, want api_error after cancellation", results[0].Status)
	}
}
