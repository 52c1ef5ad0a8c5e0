package http

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ExtractLimitOffset reads pagination query parameters, clamping the
// limit to a sane range and defaulting silently on bad input.
func ExtractLimitOffset(r *http.Request) (int, int64) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var offset int64
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}
