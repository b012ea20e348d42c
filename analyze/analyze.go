// Package analyze orchestrates an analysis run: it fetches the primary
// and competitor pages, structures them, computes gaps, runs the audits,
// and persists the resulting report. The analysis core itself never
// blocks on I/O; all fetching happens here before the differ is invoked.
package analyze

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/fwojciec/gapscan"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel competitor fetches.
const DefaultConcurrency = 4

// DefaultRPS is the per-domain request rate.
const DefaultRPS = 2.0

// Analyzer runs analysis batches. Fetching is concurrent and rate
// limited; a failure local to one competitor contributes a marker row
// instead of aborting the batch.
type Analyzer struct {
	fetcher    gapscan.Fetcher
	structurer gapscan.Structurer

	// Optional page archival pipeline.
	extractor gapscan.Extractor
	converter gapscan.Converter
	pages     gapscan.PageService

	// Optional report persistence.
	reports gapscan.ReportService

	cfg         gapscan.Config
	limiter     *DomainLimiter
	logger      *slog.Logger
	concurrency int
	retryDelays []time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithArchival enables page archival: fetched pages are content-extracted,
// converted to markdown, and stored.
func WithArchival(extractor gapscan.Extractor, converter gapscan.Converter, pages gapscan.PageService) Option {
	return func(a *Analyzer) {
		a.extractor = extractor
		a.converter = converter
		a.pages = pages
	}
}

// WithReports enables report persistence.
func WithReports(reports gapscan.ReportService) Option {
	return func(a *Analyzer) {
		a.reports = reports
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithConcurrency bounds parallel competitor fetches.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithRetryDelays overrides the fetch retry backoff, mainly for tests.
func WithRetryDelays(delays []time.Duration) Option {
	return func(a *Analyzer) {
		a.retryDelays = delays
	}
}

// WithRPS sets the per-domain request rate.
func WithRPS(rps float64) Option {
	return func(a *Analyzer) {
		if rps > 0 {
			a.limiter = NewDomainLimiter(rps)
		}
	}
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(fetcher gapscan.Fetcher, structurer gapscan.Structurer, cfg gapscan.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		fetcher:     fetcher,
		structurer:  structurer,
		cfg:         cfg,
		limiter:     NewDomainLimiter(DefaultRPS),
		logger:      slog.Default(),
		concurrency: DefaultConcurrency,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// fetched is the outcome of one competitor fetch+structure.
type fetched struct {
	url       string
	label     string
	structure *gapscan.DocumentStructure
	err       error
}

// AnalyzeUpdate runs update mode: diff an existing primary article against
// competitors. The primary must be fetchable; competitor failures degrade
// to marker rows.
func (a *Analyzer) AnalyzeUpdate(ctx context.Context, primaryURL string, competitorURLs []string) (*gapscan.Report, error) {
	if primaryURL == "" {
		return nil, gapscan.Errorf(gapscan.EINVALID, "primary URL required")
	}
	if len(competitorURLs) == 0 {
		return nil, gapscan.Errorf(gapscan.EINVALID, "at least one competitor URL required")
	}

	primary, err := a.fetchStructure(ctx, primaryURL)
	if err != nil {
		return nil, gapscan.Errorf(gapscan.EUNAVAILABLE, "primary page: %v", gapscan.ErrorMessage(err))
	}

	results := a.fetchAll(ctx, competitorURLs)

	var competitors []gapscan.Competitor
	var gaps []gapscan.GapRow
	for _, res := range results {
		if res.err != nil {
			a.logger.Warn("competitor failed", "url", res.url, "error", res.err)
			gaps = append(gaps, gapscan.UnanalyzedRow(res.label, gapscan.ErrorMessage(res.err)))
			continue
		}
		competitors = append(competitors, gapscan.Competitor{Structure: res.structure, Label: res.label})
	}

	gaps = append(gapscan.NewDiffer(a.cfg).Diff(primary, competitors), gaps...)

	audit := gapscan.AuditPage(primary)
	report := &gapscan.Report{
		Mode:           gapscan.ModeUpdate,
		PrimaryURL:     primaryURL,
		CompetitorURLs: competitorURLs,
		Gaps:           gaps,
		Audit:          &audit,
		Compliance:     gapscan.Compliance(primary, competitors),
		Media:          gapscan.MediaComparison(primary, competitors),
	}

	if err := a.persist(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// PlanNew runs plan mode: rank competitor section coverage for an article
// that does not exist yet.
func (a *Analyzer) PlanNew(ctx context.Context, title string, competitorURLs []string) (*gapscan.Report, error) {
	if title == "" {
		return nil, gapscan.Errorf(gapscan.EINVALID, "article title required")
	}
	if len(competitorURLs) == 0 {
		return nil, gapscan.Errorf(gapscan.EINVALID, "at least one competitor URL required")
	}

	results := a.fetchAll(ctx, competitorURLs)

	var competitors []gapscan.Competitor
	var gaps []gapscan.GapRow
	for _, res := range results {
		if res.err != nil {
			a.logger.Warn("competitor failed", "url", res.url, "error", res.err)
			gaps = append(gaps, gapscan.UnanalyzedRow(res.label, gapscan.ErrorMessage(res.err)))
			continue
		}
		competitors = append(competitors, gapscan.Competitor{Structure: res.structure, Label: res.label})
	}

	report := &gapscan.Report{
		Mode:           gapscan.ModePlan,
		Title:          title,
		CompetitorURLs: competitorURLs,
		Strategy:       gapscan.Rank(competitors),
		Gaps:           gaps,
	}

	if err := a.persist(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// fetchAll fetches and structures competitor pages with bounded
// concurrency, returning results in input order. Individual failures are
// recorded, never propagated.
func (a *Analyzer) fetchAll(ctx context.Context, urls []string) []fetched {
	results := make([]fetched, len(urls))

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			ds, err := a.fetchStructure(ctx, url)
			results[i] = fetched{
				url:       url,
				label:     gapscan.SourceLabel(url),
				structure: ds,
				err:       err,
			}
			// Failures stay local to their slot.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// fetchStructure fetches one page (rate limited, with retries), archives
// it when archival is configured, and structures it.
func (a *Analyzer) fetchStructure(ctx context.Context, url string) (*gapscan.DocumentStructure, error) {
	if err := a.limiter.Wait(ctx, url); err != nil {
		return nil, err
	}

	begin := time.Now()
	res, err := fetchWithRetry(ctx, a.fetcher, url, a.retryDelays)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("fetched", "url", url, "final_url", res.FinalURL, "duration", time.Since(begin))

	a.archive(ctx, url, res)

	source := res.FinalURL
	if source == "" {
		source = url
	}
	return a.structurer.Structure(res.HTML, source)
}

// archive stores a markdown rendering of the page's main content.
// Archival failures are logged, never fatal: the analysis does not depend
// on the archive.
func (a *Analyzer) archive(ctx context.Context, url string, res *gapscan.FetchResult) {
	if a.pages == nil || a.extractor == nil || a.converter == nil {
		return
	}

	extracted, err := a.extractor.Extract(res.HTML)
	if err != nil {
		a.logger.Debug("archive extract failed", "url", url, "error", err)
		return
	}
	markdown, err := a.converter.Convert(extracted.ContentHTML)
	if err != nil {
		a.logger.Debug("archive convert failed", "url", url, "error", err)
		return
	}

	page := &gapscan.Page{
		URL:      url,
		FinalURL: res.FinalURL,
		Title:    extracted.Title,
		Content:  markdown,
	}
	if err := a.pages.CreatePage(ctx, page); err != nil {
		a.logger.Warn("archive store failed", "url", url, "error", err)
	}
}

// persist stores the report when persistence is configured.
func (a *Analyzer) persist(ctx context.Context, report *gapscan.Report) error {
	if a.reports == nil {
		report.CreatedAt = time.Now().UTC()
		return nil
	}
	return a.reports.CreateReport(ctx, report)
}

// Labels returns the distinct competitor labels of a report's gap rows in
// sorted order, for display.
func Labels(rows []gapscan.GapRow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		if !seen[r.Source] {
			seen[r.Source] = true
			out = append(out, r.Source)
		}
	}
	sort.Strings(out)
	return out
}
