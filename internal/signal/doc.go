// Package signal implements the rule-based detectors that score a page
// in the five AIO readiness categories.
//
// Each detector starts from a prior (zero, or fifty for content
// consistency), runs a fixed sequence of independent checks that add or
// subtract points, records one evidence line per check that fired, and
// clamps the result to [0, 100]. Detectors never fail: a missing tag or
// attribute is scored as "not present".
//
// Text heuristics are driven by a locale keyword table (see Keywords),
// so that new languages can be supported without touching detector code.
// The Analyzer runs all detectors for one page.
package signal
