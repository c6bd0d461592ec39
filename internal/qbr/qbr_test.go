package qbr

import (
	"reflect"
	"testing"

	"github.com/cwhaley/espn-qbr/internal/table"
)

func TestLoadRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		loader *Loader
	}{
		{"bad years shape", New("2020", 1, WithFetcher(&fakeFetcher{}))},
		{"bad weeks shape", New(2020, []any{1, "two"}, WithFetcher(&fakeFetcher{}))},
		{"bad season type", New(2020, 1, WithSeasonType("preseason"), WithFetcher(&fakeFetcher{}))},
		{"bad stat type", New(2020, 1, WithStatType("monthly"), WithFetcher(&fakeFetcher{}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.loader.Load()
			if err == nil {
				t.Error("expected error, got nil")
			}
			if res != nil {
				t.Errorf("expected nil result on parameter error, got %v", res)
			}
		})
	}
}

func TestLoadRejectsBadParametersBeforeFetching(t *testing.T) {
	fetcher := &fakeFetcher{}
	loader := New(2020, 1, WithSeasonType("preseason"), WithFetcher(fetcher))

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error")
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("no pages should be fetched on parameter error, got %v", fetcher.calls)
	}
}

func TestLoadDefaults(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string][]*table.Table{
		WeeklyURL(2020, SeasonRegular, 1): qbrPage("Josh Allen BUF"),
	}}

	// Defaults are regular season, weekly stats
	loader := New(2020, 1, WithFetcher(fetcher))
	res, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantCalls := []string{WeeklyURL(2020, SeasonRegular, 1)}
	if !reflect.DeepEqual(fetcher.calls, wantCalls) {
		t.Errorf("calls = %v, want %v", fetcher.calls, wantCalls)
	}
	if res.Table.Len() != 1 {
		t.Errorf("expected 1 row, got %d", res.Table.Len())
	}
}

func TestLoadStatTypeTrimmedAndLowered(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string][]*table.Table{
		LeadersURL(2020, SeasonRegular): qbrPage("Aaron Rodgers GB"),
	}}

	loader := New(2020, 1, WithStatType("  Leaders "), WithFetcher(fetcher))
	if _, err := loader.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	pages := map[string][]*table.Table{
		WeeklyURL(2019, SeasonRegular, 1): qbrPage("Lamar Jackson BAL"),
		WeeklyURL(2020, SeasonRegular, 1): qbrPage("Josh Allen BUF"),
	}

	loader := New([]int{2019, 2020}, 1, WithFetcher(&fakeFetcher{pages: pages}))

	first, err := loader.Load()
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := loader.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("same request against the same pages should yield identical results")
	}
}

func TestLoaderNotMutatedByFailedLoad(t *testing.T) {
	loader := New(2020, 1, WithSeasonType("bogus"), WithFetcher(&fakeFetcher{}))

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error")
	}

	// The raw request survives a failed load untouched
	if loader.years != 2020 || loader.weeks != 1 || loader.seasonType != "bogus" {
		t.Error("failed Load must not rewrite the request parameters")
	}
}
