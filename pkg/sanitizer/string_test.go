package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  The Rusty Anchor  ",
			want:  "The Rusty Anchor",
		},
		{
			name:  "multiple spaces between words",
			input: "The    Rusty    Anchor",
			want:  "The Rusty Anchor",
		},
		{
			name:  "tabs and newlines",
			input: "The\t\nRusty Anchor",
			want:  "The Rusty Anchor",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Bar™ ",
			want:  "Café & Bar™",
		},
		{
			name:  "hebrew characters",
			input: " הבר של יוסי ",
			want:  "הבר של יוסי",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase",
			input: "Tel Aviv",
			want:  "tel aviv",
		},
		{
			name:  "trim and collapse",
			input: "  New   York ",
			want:  "new york",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCity(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeCity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim",
			input: "  689f1c2ab1e4d30012345678  ",
			want:  "689f1c2ab1e4d30012345678",
		},
		{
			name:  "hex case preserved",
			input: "689f1c2ab1e4d30012345678",
			want:  "689f1c2ab1e4d30012345678",
		},
		{
			name:  "already normalized",
			input: "T1",
			want:  "T1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeID(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "uppercase",
			input: "t5",
			want:  "T5",
		},
		{
			name:  "trim",
			input: "  T12  ",
			want:  "T12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLabel(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "zero pad hour",
			input: "9:30",
			want:  "09:30",
		},
		{
			name:  "already padded",
			input: "19:30",
			want:  "19:30",
		},
		{
			name:  "trim spaces",
			input: " 20:00 ",
			want:  "20:00",
		},
		{
			name:  "garbage passes through",
			input: "half past nine",
			want:  "half past nine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeClock(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeClock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
