package slots

import "errors"

var (
	// ErrSlotConflict means the (date, slot) pair is already confirmed. The
	// store's uniqueness constraint is the single source of truth; callers
	// must re-fetch confirmed slots instead of trusting an earlier read.
	ErrSlotConflict = errors.New("slots: slot already confirmed")

	// ErrNotFound means no confirmed reservation exists for the given id.
	ErrNotFound = errors.New("slots: reservation not found")

	ErrInvalidDate = errors.New("slots: invalid date, want YYYY-MM-DD")
	ErrInvalidSlot = errors.New("slots: unknown time slot")
)
