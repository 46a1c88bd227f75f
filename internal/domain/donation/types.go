package donation

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid donation status")
	ErrInvalidTransition = errors.New("invalid donation status transition")
	ErrInvalidAmount     = errors.New("donation amount cannot be negative")
	ErrFeeExceedsAmount  = errors.New("fee cannot exceed donation amount")
	ErrMissingSessionID  = errors.New("provider session id is required")
)

type Status string

const (
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
	StatusExpired           Status = "expired"
	StatusRefunded          Status = "refunded"
	StatusPartiallyRefunded Status = "partially_refunded"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCompleted, StatusFailed, StatusExpired, StatusRefunded, StatusPartiallyRefunded:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

// A donation is created as completed and only ever moves away from it.
// Refund reclassification (refunded <-> partially_refunded) stays legal so
// redelivered refund events can settle on the final amount.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusCompleted:
		return next != StatusCompleted
	case StatusRefunded, StatusPartiallyRefunded:
		return next == StatusRefunded || next == StatusPartiallyRefunded
	default:
		return false
	}
}

// ClassifyRefund maps a cumulative refunded amount onto the donation status.
// Fully refunded when the refunded total covers the original gross.
func ClassifyRefund(amountCents, refundedCents int64) Status {
	if refundedCents >= amountCents {
		return StatusRefunded
	}
	return StatusPartiallyRefunded
}
