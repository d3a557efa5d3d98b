package callsite

import "strings"

const (
	// markerOpen is the opening token of the marker comment. Its
	// presence anywhere in a query that also ends with markerClose is
	// what makes annotation idempotent.
	markerOpen = "/*func_name="

	// markerClose terminates the marker comment.
	markerClose = "*/"

	// trailingCutset is the whitespace trimmed from the end of the
	// query before splicing.
	trailingCutset = " \t\r\n"
)

// HasMarker reports whether the query, after trimming trailing
// whitespace, already ends in an inline comment and contains the
// marker's opening token. This is the idempotence guard: it keeps
// markers from accumulating across retries or statement reuse.
func HasMarker(query string) bool {
	trimmed := strings.TrimRight(query, trailingCutset)
	return strings.HasSuffix(trimmed, markerClose) && strings.Contains(trimmed, markerOpen)
}

// spliceMarker appends marker to query with a single intervening
// space, after trimming the query's trailing whitespace. Interior and
// leading whitespace, placeholders and pre-existing non-tracking
// comments are untouched. Already-annotated text is returned exactly
// as given, not even trimmed.
func spliceMarker(query, marker string) string {
	if HasMarker(query) {
		return query
	}
	return strings.TrimRight(query, trailingCutset) + " " + marker
}
