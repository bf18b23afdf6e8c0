// Package server exposes page evaluation over HTTP.
//
// The API has two routes:
//
//	GET  /           health check
//	POST /aio-check  evaluate a list of URLs
//
// Rows are returned in request order. Pages that cannot be fetched are
// reported with their failure status and zero scores.
package server
