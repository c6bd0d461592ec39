package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntList parses a comma-separated list of positive integers and
// integer ranges, e.g. "2020", "2019,2020", "1-5", "1-3,5".
func ParseIntList(s string) ([]int, error) {
	var out []int

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty element in %q", s)
		}

		if lo, hi, isRange := strings.Cut(part, "-"); isRange {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid range start in %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid range end in %q", part)
			}
			if end < start {
				return nil, fmt.Errorf("range %q runs backwards", part)
			}
			for v := start; v <= end; v++ {
				out = append(out, v)
			}
			continue
		}

		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		out = append(out, v)
	}

	return out, nil
}
