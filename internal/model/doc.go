// Package model defines the data structures shared across aioready.
//
// This package contains the following main types:
//   - Category: One of the five AIO readiness categories and its weight
//   - Signal: A detector's bounded score plus its evidence trail
//   - Judgment: Optional per-category scores from the external judge
//   - ScoreSet: The blended category scores and the composite
//   - PageResult: The outcome of evaluating one URL
//   - DomainSummary: A ranked rollup of a batch of pages
//
// Every score stored in these types is clamped to [0, 100].
package model
