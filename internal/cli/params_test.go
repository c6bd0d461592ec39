package cli

import (
	"reflect"
	"testing"
)

func TestParseIntList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"single value", "2020", []int{2020}, false},
		{"comma list", "2019,2020", []int{2019, 2020}, false},
		{"range", "1-4", []int{1, 2, 3, 4}, false},
		{"mixed list and range", "1-3,5,8-9", []int{1, 2, 3, 5, 8, 9}, false},
		{"whitespace tolerated", " 2019 , 2020 ", []int{2019, 2020}, false},
		{"single element range", "7-7", []int{7}, false},
		{"empty string", "", nil, true},
		{"trailing comma", "1,2,", nil, true},
		{"non-numeric", "one", nil, true},
		{"non-numeric in list", "1,two", nil, true},
		{"backwards range", "5-1", nil, true},
		{"bad range end", "1-x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntList(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseIntList(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIntList(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIntList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
