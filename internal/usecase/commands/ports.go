package commands

import (
	"context"

	"giveledger/internal/domain/coupon"
	"giveledger/internal/domain/donation"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type DonationSnapshot struct {
	ID              uuid.UUID
	SessionID       string
	PaymentIntentID string
	AmountCents     int64
	Status          donation.Status
}

type DonationRepository interface {
	// InsertIfAbsent records the donation unless a row for its session id
	// already exists. The store's unique constraint is the synchronization
	// point for concurrent duplicate deliveries; the second writer gets
	// inserted=false, never an error.
	InsertIfAbsent(ctx context.Context, d *donation.Donation) (id uuid.UUID, inserted bool, err error)
	// Finders return (nil, nil) when no row matches; lifecycle events for
	// unrecorded payments are expected traffic, not errors.
	FindBySessionID(ctx context.Context, sessionID string) (*DonationSnapshot, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*DonationSnapshot, error)
	// UpdateStatusBySessionID transitions a completed donation; updated=false
	// when no completed row matched the session id.
	UpdateStatusBySessionID(ctx context.Context, sessionID string, status donation.Status) (updated bool, err error)
	UpdateStatusByID(ctx context.Context, id uuid.UUID, status donation.Status) error
	// AttachDeclineReason stores the structured decline on the donation for
	// the payment intent; updated=false when none was ever recorded.
	AttachDeclineReason(ctx context.Context, paymentIntentID, code, message string) (updated bool, err error)
}

type CouponRepository interface {
	// InsertBatch writes the whole issuance batch in one statement so a code
	// collision fails the batch atomically.
	InsertBatch(ctx context.Context, coupons []*coupon.Coupon) error
}

// FeeSource looks up the authoritative settlement fee from the payment
// provider. It is only knowable after the balance transaction settles, so
// callers must expect failure and fall back to an estimate.
type FeeSource interface {
	SettlementFeeCents(ctx context.Context, paymentIntentID string) (int64, error)
}
