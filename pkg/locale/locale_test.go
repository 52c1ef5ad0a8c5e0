package locale

import (
	"testing"

	apperrors "barkeep/pkg/errors"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Language
	}{
		{"empty header falls back to english", "", English},
		{"plain english", "en", English},
		{"regional english", "en-US,en;q=0.9", English},
		{"spanish with quality", "es-MX;q=0.8", Spanish},
		{"hebrew", "he-IL", Hebrew},
		{"unsupported then supported", "fr-FR, es;q=0.5", Spanish},
		{"only unsupported", "fr, de", English},
		{"case insensitive", "ES", Spanish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.header); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestLocalize(t *testing.T) {
	msg := Localize(apperrors.CodeConflict, English)
	if msg == "" {
		t.Fatal("expected non-empty conflict message")
	}

	if Localize(apperrors.CodeConflict, Spanish) == msg {
		t.Error("expected spanish catalog to differ from english")
	}

	// Unknown code falls back to the internal message.
	if got := Localize("NO_SUCH_CODE", English); got != Localize(apperrors.CodeInternal, English) {
		t.Errorf("unknown code should fall back to internal message, got %q", got)
	}

	// Unknown language falls back to english.
	if got := Localize(apperrors.CodeNotFound, Language("xx")); got != Localize(apperrors.CodeNotFound, English) {
		t.Errorf("unknown language should fall back to english, got %q", got)
	}
}
