package pipeline

import "errors"

var (
	// ErrNoDocument is returned by steps that need a parsed page when
	// none is present.
	ErrNoDocument = errors.New("no parsed document")

	// errNotScored describes an evaluation that stopped before scoring
	// without recording why.
	errNotScored = errors.New("page was not scored")
)
