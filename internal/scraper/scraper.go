package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cwhaley/espn-qbr/internal/table"
)

const (
	UserAgent = "espn-qbr-cli/1.0 (github.com/cwhaley/espn-qbr)"
	Timeout   = 30 * time.Second
)

// ErrNoTables indicates a page was fetched successfully but contained no
// HTML tables.
var ErrNoTables = errors.New("no tables found")

// Fetcher fetches a URL and extracts the tables found on it, in document
// order. The qbr fetch loops depend on this interface so tests can substitute
// canned pages.
type Fetcher interface {
	FetchTables(url string) ([]*table.Table, error)
}

// Scraper fetches and parses HTML tables from ESPN pages
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchTables fetches the page at url and returns every HTML table on it.
func (s *Scraper) FetchTables(url string) ([]*table.Table, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseTables(resp.Body)
}

// parseTables extracts every <table> element from HTML
func parseTables(r io.Reader) ([]*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tables := make([]*table.Table, 0)
	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		if t := parseTable(sel); t != nil {
			tables = append(tables, t)
		}
	})

	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return tables, nil
}

// parseTable converts one <table> element into a table.Table. Header cells
// come from the last thead row, or from the first row when there is no thead.
// Tables without a header row are skipped.
func parseTable(sel *goquery.Selection) *table.Table {
	header := sel.Find("thead tr").Last()
	headerless := header.Length() == 0
	if headerless {
		header = sel.Find("tr").First()
	}

	cols := cellTexts(header)
	if len(cols) == 0 {
		return nil
	}

	t := table.New(cols)

	rows := sel.Find("tbody tr")
	if rows.Length() == 0 {
		rows = sel.Find("tr").Not("thead tr")
		if headerless {
			rows = rows.Slice(1, rows.Length())
		}
	}

	rows.Each(func(i int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) > 0 {
			t.AddRow(cells)
		}
	})

	return t
}

// cellTexts returns the trimmed text of each th/td cell in a row
func cellTexts(row *goquery.Selection) []string {
	var texts []string
	row.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
