// Package fetcher retrieves pages over HTTP for evaluation.
//
// A fetch succeeds only when the server answers with a 2xx status. The
// body is read up to a configurable limit and parsed into a
// dom.Document. Every failure (bad URL, network error, non-2xx status,
// unreadable body) is returned as an error, and the caller records the
// page as not evaluated.
package fetcher
