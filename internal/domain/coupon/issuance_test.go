//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"giveledger/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanIssuance(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	donationID := uuid.New()

	cases := []struct {
		name          string
		amountCents   int64
		expectedCount int
		expectedValue int64
	}{
		{name: "below tier threshold uses low face value", amountCents: 4700, expectedCount: 9, expectedValue: 500},
		{name: "at or above threshold uses high face value", amountCents: 6200, expectedCount: 6, expectedValue: 1000},
		{name: "exactly at threshold", amountCents: 5000, expectedCount: 5, expectedValue: 1000},
		{name: "amount too small issues nothing", amountCents: 300, expectedCount: 0},
		{name: "zero amount issues nothing", amountCents: 0, expectedCount: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			batch, err := coupon.PlanIssuance(donationID, tc.amountCents, "Acme", now)
			require.NoError(t, err)
			require.Len(t, batch, tc.expectedCount)

			for _, c := range batch {
				assert.Equal(t, tc.expectedValue, c.ValueCents())
				assert.Equal(t, "Acme", c.Brand())
				assert.Equal(t, donationID, c.DonationID())
				assert.Equal(t, coupon.StatusAvailable, c.Status())
			}
		})
	}

	t.Run("expiry horizon is six months, shared across the batch", func(t *testing.T) {
		batch, err := coupon.PlanIssuance(donationID, 4700, "Acme", now)
		require.NoError(t, err)
		require.NotEmpty(t, batch)

		expected := now.AddDate(0, 6, 0)
		for _, c := range batch {
			assert.True(t, c.ExpiresAt().Equal(expected))
		}
	})

	t.Run("codes are valid and independently generated", func(t *testing.T) {
		batch, err := coupon.PlanIssuance(donationID, 6200, "Acme", now)
		require.NoError(t, err)

		seen := make(map[string]bool, len(batch))
		for _, c := range batch {
			_, err := coupon.NewCode(c.Code().String())
			require.NoError(t, err)
			seen[c.Code().String()] = true
		}
		// Collisions within one small batch would be astronomically unlucky.
		assert.Len(t, seen, len(batch))
	})
}

func TestGenerateCode(t *testing.T) {
	t.Run("fixed length, unambiguous alphabet", func(t *testing.T) {
		code, err := coupon.GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code.String(), 10)

		for _, r := range code.String() {
			assert.NotContains(t, "0O1IL", string(r))
		}
	})
}

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "valid code", code: "ABCDEFGHJK", valid: true},
		{name: "too short", code: "ABC", valid: false},
		{name: "lowercase rejected", code: "abcdefghjk", valid: false},
		{name: "confusable characters rejected", code: "ABCDEFGH0O", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coupon.NewCode(tc.code)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
			}
		})
	}
}
