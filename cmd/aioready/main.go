// Package main provides the entry point for the aioready CLI.
//
// aioready scores web pages for AI Overview (AIO) readiness: how well
// search and answer engines can crawl them, lift answers out of them and
// trust them. Rule-based signals are optionally blended with scores from
// an external LLM judge.
//
// Usage:
//
//	aioready check https://example.com/guide
//	aioready check --list urls.txt --markdown -o report.md
//	aioready serve --addr :8000
//
// See --help for all available options.
package main

func main() {
	Execute()
}
