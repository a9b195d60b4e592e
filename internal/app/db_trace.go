package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace and caps the statement so
// span attributes stay readable for the multi-join standings queries.
func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return strings.TrimSpace(query)
	}

	normalized := strings.Join(fields, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
