package interndb

import "errors"

// Sentinel errors for the persistence layer.
var (
	// ErrNotFound indicates the store holds no intern rows.
	ErrNotFound = errors.New("intern not found")

	// ErrNotConnected indicates the initial connection attempt has not succeeded.
	ErrNotConnected = errors.New("persistent store not connected")

	// ErrSourceUnavailable marks a read against a connected store that failed
	// for this call only. It never changes the connectivity state.
	ErrSourceUnavailable = errors.New("source unavailable for this call")
)
