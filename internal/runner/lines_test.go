package runner

import "testing"

func TestParseLineRange(t *testing.T) {
	tests := []struct {
		input   string
		want    lineRange
		wantErr bool
	}{
		{"", lineRange{}, false},
		{"2:4", lineRange{first: 2, last: 4}, false},
		{"3:3", lineRange{first: 3, last: 3}, false},
		{":4", lineRange{first: 1, last: 4}, false},
		{"5:", lineRange{first: 5}, false},
		{":", lineRange{first: 1}, false},
		{"4", lineRange{}, true},
		{"0:2", lineRange{}, true},
		{"4:2", lineRange{}, true},
		{"a:b", lineRange{}, true},
		{"-1:2", lineRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLineRange(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineRangeOffsets(t *testing.T) {
	src := "a\nbb\nccc\n"

	tests := []struct {
		name       string
		lr         lineRange
		start, end int
	}{
		{"first line", lineRange{first: 1, last: 1}, 0, 2},
		{"middle line", lineRange{first: 2, last: 2}, 2, 5},
		{"last line", lineRange{first: 3, last: 3}, 5, 9},
		{"two lines", lineRange{first: 1, last: 2}, 0, 5},
		{"to end", lineRange{first: 2}, 2, 9},
		{"last past end", lineRange{first: 2, last: 10}, 2, 9},
		{"first past end", lineRange{first: 10, last: 12}, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.lr.offsets(src)
			if start != tt.start || end != tt.end {
				t.Errorf("offsets = (%d, %d), want (%d, %d)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestLineRangeOffsetsNoFinalNewline(t *testing.T) {
	start, end := lineRange{first: 2, last: 2}.offsets("a\nbb")
	if start != 2 || end != 4 {
		t.Errorf("offsets = (%d, %d), want (2, 4)", start, end)
	}
}
