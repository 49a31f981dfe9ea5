package importer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"trackmatch/internal/logging"
	"trackmatch/internal/match"
	"trackmatch/internal/spotify"
)

// Status classifies the outcome for one playlist line.
type Status string

const (
	StatusMatched          Status = "matched"
	StatusNotFound         Status = "not_found"
	StatusAPIError         Status = "api_error"
	StatusInputFormatError Status = "input_format_error"
)

// Result is the outcome for one entry.
type Result struct {
	Line    int      `json:"line"`
	Input   string   `json:"input"`
	Title   string   `json:"title,omitempty"`
	Artists []string `json:"artists,omitempty"`
	Status  Status   `json:"status"`
	// Match is set only for StatusMatched.
	Match *match.Match `json:"match,omitempty"`
	Error string       `json:"error,omitempty"`
}

// Summary aggregates a batch run.
type Summary struct {
	BatchID      string        `json:"batch_id"`
	Total        int           `json:"total"`
	Matched      int           `json:"matched"`
	NotFound     int           `json:"not_found"`
	APIErrors    int           `json:"api_errors"`
	FormatErrors int           `json:"format_errors"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Options configures an Importer.
type Options struct {
	// Workers is the number of concurrent lookups; values below 1 are
	// treated as 1.
	Workers int
	// Market and Limit are passed through to every search.
	Market string
	Limit  int
}

// Importer runs playlist entries through search and matching.
type Importer struct {
	searcher spotify.Searcher
	matcher  *match.Matcher
	opts     Options
	logger   *slog.Logger
}

// New builds an Importer. A nil logger disables logging.
func New(searcher spotify.Searcher, matcher *match.Matcher, opts Options, logger *slog.Logger) *Importer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{
		searcher: searcher,
		matcher:  matcher,
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "importer"),
	}
}

// Run resolves every entry and returns per-line results in input order
// plus a batch summary. Context cancellation stops the batch; entries
// not yet processed are reported as API errors with the context error.
func (imp *Importer) Run(ctx context.Context, entries []Entry) ([]Result, Summary) {
	start := time.Now()
	batchID := uuid.NewString()
	logger := imp.logger.With(logging.String(logging.FieldBatchID, batchID))
	logger.Info("starting import batch",
		logging.Int("entries", len(entries)),
		logging.Int("workers", imp.opts.Workers))

	results := make([]Result, len(entries))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < imp.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = imp.resolve(ctx, logger, entries[i])
			}
		}()
	}

dispatch:
	for i := range entries {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	// Entries never dispatched have a zero Status.
	for i := range results {
		if results[i].Status == "" {
			results[i] = Result{
				Line:   entries[i].Line,
				Input:  entries[i].Raw,
				Status: StatusAPIError,
				Error:  ctx.Err().Error(),
			}
		}
	}

	summary := summarize(batchID, results, time.Since(start))
	logger.Info("import batch finished",
		logging.Int("matched", summary.Matched),
		logging.Int("not_found", summary.NotFound),
		logging.Int("api_errors", summary.APIErrors),
		logging.Int("format_errors", summary.FormatErrors),
		logging.Duration("elapsed", summary.Elapsed))
	return results, summary
}

func (imp *Importer) resolve(ctx context.Context, logger *slog.Logger, entry Entry) Result {
	result := Result{
		Line:    entry.Line,
		Input:   entry.Raw,
		Title:   entry.Title,
		Artists: entry.Artists,
	}
	if entry.Err != nil {
		result.Status = StatusInputFormatError
		result.Error = entry.Err.Error()
		return result
	}

	query := spotify.BuildTrackQuery(entry.Title, entry.Artists)
	search, err := imp.searcher.SearchTracks(ctx, query, spotify.SearchOptions{
		Market: imp.opts.Market,
		Limit:  imp.opts.Limit,
	})
	if err != nil {
		logger.Warn("search failed",
			logging.String(logging.FieldQuery, query),
			logging.Error(err))
		result.Status = StatusAPIError
		result.Error = err.Error()
		return result
	}

	best, ok := imp.matcher.BestMatch(match.Query{
		Title:   entry.Title,
		Artists: entry.Artists,
	}, search.Candidates())
	if !ok {
		result.Status = StatusNotFound
		return result
	}
	result.Status = StatusMatched
	result.Match = &best
	logger.Debug("matched entry",
		logging.String(logging.FieldQuery, entry.Raw),
		logging.String(logging.FieldCandidateID, best.Track.ID),
		logging.Float64("score", best.Score.FinalScore))
	return result
}

func summarize(batchID string, results []Result, elapsed time.Duration) Summary {
	summary := Summary{BatchID: batchID, Total: len(results), Elapsed: elapsed}
	for _, result := range results {
		switch result.Status {
		case StatusMatched:
			summary.Matched++
		case StatusNotFound:
			summary.NotFound++
		case StatusAPIError:
			summary.APIErrors++
		case StatusInputFormatError:
			summary.FormatErrors++
		}
	}
	return summary
}
