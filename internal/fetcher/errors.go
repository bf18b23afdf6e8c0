package fetcher

import "errors"

var (
	// ErrInvalidURL is returned when the target is not an absolute
	// http or https URL.
	ErrInvalidURL = errors.New("invalid URL: must be an absolute http or https URL")

	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)
