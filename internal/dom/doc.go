// Package dom provides the read-only, queryable view of a parsed page that
// the extractor and the detectors work on.
//
// A Document is built once per page from raw HTML. It answers the
// questions the scoring rules ask: the first element with a tag and
// attributes, every element of a set of tags in document order, and the
// page's visible text with whitespace collapsed. Missing tags and missing
// attributes are never errors; they simply match nothing.
//
// Parsing uses golang.org/x/net/html, which repairs malformed markup the
// way browsers do. Selection is done through goquery.
package dom
