//go:build unit

package donation_test

import (
	"testing"

	"giveledger/internal/domain/donation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateFeeCents(t *testing.T) {
	cases := []struct {
		name        string
		amountCents int64
		expected    int64
	}{
		{name: "100.00 units", amountCents: 10000, expected: 320}, // 2.9% + 30 = 290 + 30
		{name: "47.00 units", amountCents: 4700, expected: 166},   // round(136.3) + 30
		{name: "zero amount", amountCents: 0, expected: 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, donation.EstimateFeeCents(tc.amountCents))
		})
	}
}

func TestNewEconomics(t *testing.T) {
	t.Run("net is gross minus fee", func(t *testing.T) {
		eco, err := donation.NewEconomics(10000, 320)
		require.NoError(t, err)

		want := donation.Economics{AmountCents: 10000, FeeCents: 320, NetCents: 9680}
		if diff := cmp.Diff(want, eco); diff != "" {
			t.Errorf("economics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative amount NG", func(t *testing.T) {
		_, err := donation.NewEconomics(-1, 0)
		assert.ErrorIs(t, err, donation.ErrInvalidAmount)
	})

	t.Run("fee above gross NG", func(t *testing.T) {
		_, err := donation.NewEconomics(100, 101)
		assert.ErrorIs(t, err, donation.ErrFeeExceedsAmount)
	})

	t.Run("negative fee NG", func(t *testing.T) {
		_, err := donation.NewEconomics(100, -1)
		assert.ErrorIs(t, err, donation.ErrFeeExceedsAmount)
	})
}

func TestNewDonation(t *testing.T) {
	eco, err := donation.NewEconomics(10000, 320)
	require.NoError(t, err)

	t.Run("created as completed", func(t *testing.T) {
		d, err := donation.NewDonation("cs_test_1", "pi_test_1", eco, "usd", nil, "donor@example.com", nil, nil, "card", nil)
		require.NoError(t, err)
		assert.Equal(t, donation.StatusCompleted, d.Status())
		assert.Equal(t, int64(9680), d.NetCents())
	})

	t.Run("session id required", func(t *testing.T) {
		_, err := donation.NewDonation("", "pi_test_1", eco, "usd", nil, "donor@example.com", nil, nil, "card", nil)
		assert.ErrorIs(t, err, donation.ErrMissingSessionID)
	})
}
