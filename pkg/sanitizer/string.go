package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeAddress(address string) string {
	return TrimAndNormalize(address)
}

func NormalizeCity(city string) string {
	return strings.ToLower(TrimAndNormalize(city))
}

// NormalizeID trims an opaque identifier such as a table or drink
// document ID. IDs are case-sensitive (ObjectID hex is lowercase) so
// trimming is the only safe normalization.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// NormalizeLabel trims and uppercases a human-entered table label.
// Labels are stored uppercase so "t5" and "T5" name the same table.
func NormalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// NormalizeClock zero-pads a clock value so "9:30" becomes "09:30".
// Anything that is not H:MM or HH:MM passes through unchanged for the
// validator to reject.
func NormalizeClock(clock string) string {
	clock = strings.TrimSpace(clock)
	if len(clock) == 4 && clock[1] == ':' {
		return "0" + clock
	}
	return clock
}

// NormalizeDate trims a calendar date. Format checking belongs to the
// validator, not here.
func NormalizeDate(date string) string {
	return strings.TrimSpace(date)
}
