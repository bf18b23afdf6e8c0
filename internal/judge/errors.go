package judge

import "errors"

var (
	// ErrNotConfigured is returned when endpoint, deployment or key is missing.
	ErrNotConfigured = errors.New("judge is not configured")

	// ErrRateLimited is returned for HTTP 429 responses.
	ErrRateLimited = errors.New("judge rate limit or quota exceeded")

	// ErrEmptyResponse is returned when the judge answers without content.
	ErrEmptyResponse = errors.New("judge returned an empty response")

	// ErrMalformedJudgment is returned when the score reply is not a JSON
	// object of integer scores.
	ErrMalformedJudgment = errors.New("malformed judgment")
)
