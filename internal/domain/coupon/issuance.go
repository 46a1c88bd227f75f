package coupon

import (
	"time"

	"github.com/google/uuid"
)

// Issuance tiers: donations of 50 currency units or more earn 10-unit
// coupons, smaller ones earn 5-unit coupons. Count is floor(amount/face),
// so a donation below one face value yields an empty batch.
const (
	tierThresholdCents = 5000
	highFaceCents      = 1000
	lowFaceCents       = 500

	expiryMonths = 6
)

// PlanIssuance derives the coupon batch for a completed donation. The expiry
// horizon is computed once and shared across the batch. An empty slice is a
// valid outcome (amount too small), not an error.
func PlanIssuance(donationID uuid.UUID, amountCents int64, brand string, now time.Time) ([]*Coupon, error) {
	faceCents := int64(lowFaceCents)
	if amountCents >= tierThresholdCents {
		faceCents = highFaceCents
	}

	count := amountCents / faceCents
	if count <= 0 {
		return nil, nil
	}

	expiresAt := now.AddDate(0, expiryMonths, 0)

	batch := make([]*Coupon, 0, count)
	for range count {
		code, err := GenerateCode()
		if err != nil {
			return nil, err
		}
		batch = append(batch, &Coupon{
			code:       code,
			valueCents: faceCents,
			brand:      brand,
			donationID: donationID,
			status:     StatusAvailable,
			expiresAt:  expiresAt,
		})
	}
	return batch, nil
}
