package enrich

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"marquee/internal/columns"
	"marquee/internal/logging"
	"marquee/internal/tabular"
)

// ErrInterrupted reports a run stopped by cancellation. Merges completed
// before the interrupt are still present in the document, and the summary
// returned alongside the error covers the rows visited so far.
var ErrInterrupted = errors.New("enrichment interrupted")

// relatedSeparator joins film titles in a related films cell.
const relatedSeparator = " | "

const defaultRelatedLimit = 3

// TrailerSearcher finds a trailer video identifier for a search query. An
// empty identifier with a nil error means no result.
type TrailerSearcher interface {
	SearchTrailer(ctx context.Context, query string) (string, error)
}

// RelatedFinder lists a director's most popular films, best first.
type RelatedFinder interface {
	TopFilmsByDirector(ctx context.Context, name string, limit int) ([]string, error)
}

// Progress receives a notification after each row is resolved, whether it
// was processed or skipped.
type Progress func(done, total int)

// Options control a single run.
type Options struct {
	// DelaySeconds is the pause inserted between consecutive rows that
	// perform lookups. Skipped rows never pause.
	DelaySeconds float64
	// DryRun walks the document and counts the rows that would be
	// processed without performing lookups or modifying cells.
	DryRun bool
	// SkipRelated disables related films lookups for the whole run.
	SkipRelated bool
	// RelatedLimit caps the number of films in a related cell.
	RelatedLimit int
}

// Summary aggregates the counters reported after a run.
type Summary struct {
	Total            int
	Processed        int
	Skipped          int
	TrailersFound    int
	TrailersNotFound int
	RelatedFound     int
	RelatedNotFound  int
	Errors           int
}

// Enricher walks a document row by row, fills blank trailer and related
// films cells through its lookup providers, and leaves everything else
// untouched.
type Enricher struct {
	trailers TrailerSearcher
	related  RelatedFinder
	sleep    func(time.Duration)
	logger   *slog.Logger
	progress Progress
}

// Option customizes an Enricher.
type Option func(*Enricher)

// WithSleep replaces the pause between lookup rows, used by tests to run
// without real delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Enricher) {
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// WithLogger attaches a logger for per-row detail.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		e.logger = logger
	}
}

// WithProgress attaches a per-row progress callback.
func WithProgress(progress Progress) Option {
	return func(e *Enricher) {
		e.progress = progress
	}
}

// New builds an Enricher. The related finder may be nil when related films
// lookups are disabled for every run.
func New(trailers TrailerSearcher, related RelatedFinder, opts ...Option) *Enricher {
	enricher := &Enricher{
		trailers: trailers,
		related:  related,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(enricher)
	}
	enricher.logger = logging.NewComponentLogger(enricher.logger, "enrich")
	return enricher
}

// Run visits every row in file order. It returns ErrInterrupted when the
// context is cancelled mid-run; lookup failures are counted in the summary
// and never abort the run.
func (e *Enricher) Run(ctx context.Context, doc *tabular.Document, binding columns.Binding, opts Options) (Summary, error) {
	summary := Summary{Total: doc.RowCount()}
	if e.trailers == nil {
		return summary, errors.New("trailer searcher required")
	}
	limit := opts.RelatedLimit
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	delay := time.Duration(opts.DelaySeconds * float64(time.Second))

	e.logger.Debug("starting enrichment",
		logging.Int("rows", summary.Total),
		logging.Float64("delay_seconds", opts.DelaySeconds),
		logging.Bool("dry_run", opts.DryRun))

	pendingDelay := false
	for row := 0; row < doc.RowCount(); row++ {
		if ctx.Err() != nil {
			return summary, ErrInterrupted
		}

		wantTrailer := Eligible(doc, binding, row, columns.RoleTrailer)
		wantRelated := !opts.SkipRelated && e.related != nil && Eligible(doc, binding, row, columns.RoleRelated)
		if !wantTrailer && !wantRelated {
			summary.Skipped++
			e.logger.Debug("skipping row",
				logging.Int("row", row+1),
				logging.String("reason", skipReason(doc, binding, row)))
			e.notify(row+1, summary.Total)
			continue
		}

		req := buildRequest(doc, binding, row)
		if opts.DryRun {
			e.logger.Debug("would process row",
				logging.Int("row", row+1),
				logging.String("title", req.title),
				logging.Bool("trailer", wantTrailer),
				logging.Bool("related", wantRelated))
			summary.Processed++
			e.notify(row+1, summary.Total)
			continue
		}

		if pendingDelay && delay > 0 {
			e.sleep(delay)
			if ctx.Err() != nil {
				return summary, ErrInterrupted
			}
		}

		if wantTrailer {
			if err := e.lookupTrailer(ctx, doc, binding, row, req, &summary); err != nil {
				return summary, err
			}
		}
		if wantRelated {
			if err := e.lookupRelated(ctx, doc, binding, row, req, limit, &summary); err != nil {
				return summary, err
			}
		}

		pendingDelay = true
		summary.Processed++
		e.notify(row+1, summary.Total)
	}

	e.logger.Debug("enrichment finished",
		logging.Int("processed", summary.Processed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("errors", summary.Errors))
	return summary, nil
}

func (e *Enricher) lookupTrailer(ctx context.Context, doc *tabular.Document, binding columns.Binding, row int, req lookupRequest, summary *Summary) error {
	query := buildTrailerQuery(req)
	e.logger.Debug("searching trailer",
		logging.Int("row", row+1),
		logging.String("title", req.title),
		logging.String("query", query))
	videoID, err := e.trailers.SearchTrailer(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		summary.Errors++
		e.logger.Debug("trailer lookup failed",
			logging.Int("row", row+1),
			logging.String("title", req.title),
			logging.Error(err))
		return nil
	}
	if videoID == "" {
		summary.TrailersNotFound++
		e.logger.Debug("no trailer found",
			logging.Int("row", row+1),
			logging.String("title", req.title))
		return nil
	}
	url := watchURL(videoID)
	doc.SetCell(row, binding.Trailer, url)
	summary.TrailersFound++
	e.logger.Debug("trailer merged",
		logging.Int("row", row+1),
		logging.String("title", req.title),
		logging.String("url", url))
	return nil
}

func (e *Enricher) lookupRelated(ctx context.Context, doc *tabular.Document, binding columns.Binding, row int, req lookupRequest, limit int, summary *Summary) error {
	e.logger.Debug("searching related films",
		logging.Int("row", row+1),
		logging.String("director", req.director))
	titles, err := e.related.TopFilmsByDirector(ctx, req.director, limit)
	if err != nil {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		summary.Errors++
		e.logger.Debug("related films lookup failed",
			logging.Int("row", row+1),
			logging.String("director", req.director),
			logging.Error(err))
		return nil
	}
	if len(titles) == 0 {
		summary.RelatedNotFound++
		e.logger.Debug("no related films found",
			logging.Int("row", row+1),
			logging.String("director", req.director))
		return nil
	}
	joined := strings.Join(titles, relatedSeparator)
	doc.SetCell(row, binding.Related, joined)
	summary.RelatedFound++
	e.logger.Debug("related films merged",
		logging.Int("row", row+1),
		logging.String("director", req.director),
		logging.Int("count", len(titles)))
	return nil
}

func (e *Enricher) notify(done, total int) {
	if e.progress != nil {
		e.progress(done, total)
	}
}

func skipReason(doc *tabular.Document, binding columns.Binding, row int) string {
	if !binding.Bound(columns.RoleTitle) || blank(doc.Cell(row, binding.Title)) {
		return "missing title"
	}
	return "already enriched"
}
