package janitor

import "errors"

var (
	// ErrBadSecret means the inbound shared-secret header did not match.
	ErrBadSecret = errors.New("webhook secret mismatch")

	// ErrMalformedUpdate means the inbound body did not decode as an Update.
	ErrMalformedUpdate = errors.New("malformed update payload")
)
