package engineports

import "errors"

// Sentinel errors shared by the engine and its adapters. Callers branch with
// errors.Is; adapters wrap these with detail.
var (
	// ErrConfiguration marks a call that could not start, e.g. a missing
	// API key. Retrying without operator action is pointless.
	ErrConfiguration = errors.New("provider configuration error")

	// ErrTransport marks a failed exchange with the provider: network
	// errors, non-2xx statuses, undecodable bodies.
	ErrTransport = errors.New("provider transport error")

	// ErrEmptyResponse marks a well-formed reply that carried no usable
	// completion text.
	ErrEmptyResponse = errors.New("provider returned no completion")
)
