// Package pipeline evaluates pages by running them through a sequence
// of steps: fetch, extract, locale selection, external judgment,
// detection, blending and the optional advisory report.
//
// Each step receives the page's Evaluation and fills in its part. A
// failed fetch stops the pipeline and the page is reported as not
// evaluated. Judge failures are recorded on the Evaluation and never
// stop scoring.
//
// The BatchProcessor evaluates many pages concurrently with errgroup,
// keeping results in input order. Rollup builds the domain summary.
package pipeline
