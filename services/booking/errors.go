package booking

import "fmt"

// PersistenceError means both the primary and the fallback write failed.
// This is the one failure that must surface loudly: money has already
// moved and the booking would otherwise be dropped.
type PersistenceError struct {
	SessionID   string
	PrimaryErr  error
	FallbackErr error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist booking for session %s: primary: %v, fallback: %v",
		e.SessionID, e.PrimaryErr, e.FallbackErr)
}
