package ledger

import "errors"

// Completion errors. Unknown-id and invalid-outcome conditions surface as
// catalog.ErrNotFound and reward.ErrInvalidOutcome; these two are the
// ledger's own.
var (
	// ErrNotUnlocked means the unit's prerequisites are not yet met.
	ErrNotUnlocked = errors.New("unit not unlocked")

	// ErrAlreadyCompleted is the idempotent no-op signal. CompleteUnit
	// returns it together with the previously recorded grant.
	ErrAlreadyCompleted = errors.New("unit already completed")
)
