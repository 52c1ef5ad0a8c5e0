package sanitizer

func NormalizeStringSlice(items []string, normalizer func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)

		if normalized == "" {
			continue
		}

		if seen[normalized] {
			continue
		}

		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}

// NormalizeTableIDs deduplicates a booking's table list. A request
// naming the same table twice holds and books it once.
func NormalizeTableIDs(tableIDs []string) []string {
	return NormalizeStringSlice(tableIDs, NormalizeID)
}

func NormalizeDrinkIDs(drinkIDs []string) []string {
	return NormalizeStringSlice(drinkIDs, NormalizeID)
}
