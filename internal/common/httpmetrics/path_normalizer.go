package httpmetrics

import "regexp"

var uuidRegex = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// NormalizePath keeps metric label cardinality bounded. Every parameterized
// route here carries a uuid, so collapsing those is enough:
// /jokes/3f1c… becomes /jokes/{id}.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	return uuidRegex.ReplaceAllString(path, "{id}")
}
