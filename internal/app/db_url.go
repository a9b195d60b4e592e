package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes when requested,
// leaving any explicit setting in the URL alone. lib/pq needs the flag when
// the connection goes through pgbouncer in transaction pooling mode.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Has("disable_prepared_binary_result") {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// dbNameFromURL extracts the database name from either a postgres:// URL
// or a key=value DSN, for the otelsql db.name attribute.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		key, value, found := strings.Cut(token, "=")
		if !found || key != "dbname" {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}
