package qbr

import (
	"fmt"
	"strings"
)

// Season codes ESPN uses in its QBR page addresses.
const (
	SeasonRegular    = 2
	SeasonPostseason = 3
)

// Season type names accepted by SeasonCodes, case- and whitespace-insensitive.
const (
	SeasonTypeRegular    = "regular"
	SeasonTypePostseason = "postseason"
	SeasonTypeAll        = "all"
)

// SeasonCodes maps a season type name to the ESPN season codes it covers:
// regular -> [2], postseason -> [3], all -> [2, 3].
func SeasonCodes(seasonType string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(seasonType)) {
	case SeasonTypeRegular:
		return []int{SeasonRegular}, nil
	case SeasonTypePostseason:
		return []int{SeasonPostseason}, nil
	case SeasonTypeAll:
		return []int{SeasonRegular, SeasonPostseason}, nil
	default:
		return nil, fmt.Errorf("unknown season type %q: please enter either 'regular', 'postseason', or 'all'", seasonType)
	}
}

// SeasonName returns the human-readable name for an ESPN season code.
func SeasonName(code int) string {
	if code == SeasonPostseason {
		return SeasonTypePostseason
	}
	return SeasonTypeRegular
}

// IntList normalizes a years or weeks parameter into a list of ints. A
// scalar int becomes a single-element list; an int slice is copied with its
// order preserved. Validation is atomic: a []any holding any non-int element
// is rejected whole, never returned partially converted. The second return
// value is false for any other input shape.
func IntList(v any) ([]int, bool) {
	switch x := v.(type) {
	case int:
		return []int{x}, true
	case []int:
		out := make([]int, len(x))
		copy(out, x)
		return out, true
	case []any:
		out := make([]int, 0, len(x))
		for _, e := range x {
			n, ok := e.(int)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	default:
		return nil, false
	}
}
