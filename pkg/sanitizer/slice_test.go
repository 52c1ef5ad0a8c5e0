package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeTableIDs(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "deduplicate after trimming",
			input: []string{"t1", " t1 ", "t1"},
			want:  []string{"t1"},
		},
		{
			name:  "preserve order of first occurrence",
			input: []string{"T3", "T1", "T3", "T2"},
			want:  []string{"T3", "T1", "T2"},
		},
		{
			name:  "drop empties",
			input: []string{"", "  ", "T1"},
			want:  []string{"T1"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTableIDs(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTableIDs(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "israeli mobile",
			input: "052-123-4567",
			want:  "+972521234567",
		},
		{
			name:  "already e164",
			input: "+972521234567",
			want:  "+972521234567",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
