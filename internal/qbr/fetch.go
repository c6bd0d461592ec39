package qbr

import (
	"fmt"
	"strconv"

	"github.com/cwhaley/espn-qbr/internal/logger"
	"github.com/cwhaley/espn-qbr/internal/table"
)

// There is no postseason week 4 page: week 3 is the conference championships
// and week 5 is the Super Bowl. The triple is skipped, not an error.
const postseasonGapWeek = 4

// WeeklyURL returns the address of one weekly QBR page.
func WeeklyURL(year, seasonCode, week int) string {
	return fmt.Sprintf("https://www.espn.com/nfl/qbr/_/view/weekly/season/%d/seasontype/%d/week/%d", year, seasonCode, week)
}

// LeadersURL returns the address of one season-leaders QBR page.
func LeadersURL(year, seasonCode int) string {
	return fmt.Sprintf("https://www.espn.com/nfl/qbr/_/season/%d/seasontype/%d", year, seasonCode)
}

// loadWeekly fetches one page per (season code, year, week) triple, in that
// nesting order, and combines the results.
func (l *Loader) loadWeekly(codes, years, weeks []int) *Result {
	res := &Result{}
	var pages []*table.Table

	for _, code := range codes {
		for _, year := range years {
			for _, week := range weeks {
				if code == SeasonPostseason && week == postseasonGapWeek {
					continue
				}

				url := WeeklyURL(year, code, week)
				l.log.Debug("Fetching weekly page", logger.Fields{"url": url})

				tables, err := l.fetcher.FetchTables(url)
				if err != nil {
					diag := fmt.Sprintf("no data for year %d %s season week %d: %v", year, SeasonName(code), week, err)
					res.Diagnostics = append(res.Diagnostics, diag)
					l.log.Warn("Skipping page", logger.Fields{"url": url, "reason": err.Error()})
					continue
				}

				page := table.JoinColumns(tables)
				if page == nil {
					diag := fmt.Sprintf("no data for year %d %s season week %d: page has no tables", year, SeasonName(code), week)
					res.Diagnostics = append(res.Diagnostics, diag)
					l.log.Warn("Skipping page", logger.Fields{"url": url, "reason": "page has no tables"})
					continue
				}
				page.AddColumn("year", strconv.Itoa(year))
				page.AddColumn("season_type", SeasonName(code))
				pages = append(pages, page)

				l.log.Debug("Collected page", logger.Fields{"url": url, "rows": page.Len()})
			}
		}
	}

	res.Table = table.Concat(pages)
	if res.Table == nil {
		res.Diagnostics = append(res.Diagnostics, "no data to output")
	}
	return res
}

// loadLeaders fetches one page per (season code, year) pair, in that nesting
// order, and combines the results.
func (l *Loader) loadLeaders(codes, years []int) *Result {
	res := &Result{}
	var pages []*table.Table

	for _, code := range codes {
		for _, year := range years {
			url := LeadersURL(year, code)
			l.log.Debug("Fetching leaders page", logger.Fields{"url": url})

			tables, err := l.fetcher.FetchTables(url)
			if err != nil {
				diag := fmt.Sprintf("no data for year %d %s season leaders: %v", year, SeasonName(code), err)
				res.Diagnostics = append(res.Diagnostics, diag)
				l.log.Warn("Skipping page", logger.Fields{"url": url, "reason": err.Error()})
				continue
			}

			page := table.JoinColumns(tables)
			if page == nil {
				diag := fmt.Sprintf("no data for year %d %s season leaders: page has no tables", year, SeasonName(code))
				res.Diagnostics = append(res.Diagnostics, diag)
				l.log.Warn("Skipping page", logger.Fields{"url": url, "reason": "page has no tables"})
				continue
			}
			page.AddColumn("year", strconv.Itoa(year))
			pages = append(pages, page)

			l.log.Debug("Collected page", logger.Fields{"url": url, "rows": page.Len()})
		}
	}

	res.Table = table.Concat(pages)
	if res.Table == nil {
		res.Diagnostics = append(res.Diagnostics, "no data to output")
	}
	return res
}
