package qbr

import (
	"fmt"
	"strings"

	"github.com/cwhaley/espn-qbr/internal/logger"
	"github.com/cwhaley/espn-qbr/internal/scraper"
	"github.com/cwhaley/espn-qbr/internal/table"
)

// Stat type names accepted by a Loader.
const (
	StatTypeWeekly  = "weekly"
	StatTypeLeaders = "leaders"
)

// Loader describes one QBR request. The raw parameters are never mutated;
// Load normalizes them into locals each time, so a Loader can be reused and
// a failed load leaves it unchanged.
type Loader struct {
	years      any
	weeks      any
	seasonType string
	statType   string
	fetcher    scraper.Fetcher
	log        *logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSeasonType selects "regular" (default), "postseason", or "all".
func WithSeasonType(seasonType string) Option {
	return func(l *Loader) { l.seasonType = seasonType }
}

// WithStatType selects "weekly" (default) or "leaders".
func WithStatType(statType string) Option {
	return func(l *Loader) { l.statType = statType }
}

// WithFetcher substitutes the page fetcher, primarily for tests.
func WithFetcher(f scraper.Fetcher) Option {
	return func(l *Loader) { l.fetcher = f }
}

// WithLogger sets the logger used to report per-page progress.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New creates a Loader for the given years and weeks. Both accept an int, a
// []int, or a []any of ints; the shape is validated when Load runs. Defaults:
// regular season, weekly stats.
func New(years, weeks any, opts ...Option) *Loader {
	l := &Loader{
		years:      years,
		weeks:      weeks,
		seasonType: SeasonTypeRegular,
		statType:   StatTypeWeekly,
		fetcher:    scraper.New(),
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Result holds the combined dataset and any per-page diagnostics gathered
// while loading. A nil Table means no pages yielded data (an absent dataset,
// distinct from a table with zero rows).
type Result struct {
	Table       *table.Table
	Diagnostics []string
}

// Empty reports whether the result carries no dataset at all.
func (r *Result) Empty() bool {
	return r.Table == nil
}

// Load fetches every page the request covers and returns the combined table.
// Parameter errors (bad season type, stat type, or year/week shape) fail the
// whole call; page-level failures are recorded as diagnostics and skipped.
func (l *Loader) Load() (*Result, error) {
	codes, err := SeasonCodes(l.seasonType)
	if err != nil {
		return nil, err
	}

	years, ok := IntList(l.years)
	if !ok {
		return nil, fmt.Errorf("invalid years parameter: please enter an integer or a list of integers")
	}
	weeks, ok := IntList(l.weeks)
	if !ok {
		return nil, fmt.Errorf("invalid weeks parameter: please enter an integer or a list of integers")
	}

	switch strings.ToLower(strings.TrimSpace(l.statType)) {
	case StatTypeWeekly:
		return l.loadWeekly(codes, years, weeks), nil
	case StatTypeLeaders:
		return l.loadLeaders(codes, years), nil
	default:
		return nil, fmt.Errorf("unknown stat type %q: please enter either 'weekly' or 'leaders'", l.statType)
	}
}
