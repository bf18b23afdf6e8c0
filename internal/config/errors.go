package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is().
var (
	// ErrNoTarget is returned when no URL or list file is specified.
	ErrNoTarget = errors.New("no target specified: provide one or more URLs or use --list")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidTopN is returned when the fix-first list length is negative.
	ErrInvalidTopN = errors.New("invalid top: must be non-negative")

	// ErrUnknownLocale is returned when the locale names no keyword table.
	ErrUnknownLocale = errors.New("unknown locale: use ja, en, auto or a locale defined under keywords")

	// ErrInvalidKeywords is returned when a keyword table in the
	// configuration file does not compile.
	ErrInvalidKeywords = errors.New("invalid keyword table")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
