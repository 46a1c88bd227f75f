//go:build e2e

package webhook_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "giveledger/internal/handler/dto/response"
	pkgjwt "giveledger/internal/pkg/jwt"
	"giveledger/tests/common/dbtest"
	"giveledger/tests/common/httptest"
	"giveledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	webhookURL   = "/api/webhooks/stripe"
	donationsURL = "/api/donations"
)

type WebhookSuite struct {
	e2e.SharedSuite
}

func (s *WebhookSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestWebhookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WebhookSuite))
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func (s *WebhookSuite) eventPayload(eventType, dataObject string) []byte {
	return fmt.Appendf(nil, `{
		"id": "evt_%s",
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {"object": %s}
	}`, uuid.NewString()[:8], stripe.APIVersion, eventType, dataObject)
}

func (s *WebhookSuite) signPayload(payload []byte) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, s.Config.Stripe.WebhookSecret)
	return fmt.Sprintf("t=%d,v1=%x", now.Unix(), sig)
}

func (s *WebhookSuite) deliver(eventType, dataObject string) int {
	payload := s.eventPayload(eventType, dataObject)
	rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, payload,
		map[string]string{"Stripe-Signature": s.signPayload(payload)})
	return rec.Code
}

func checkoutSessionJSON(sessionID, intentID string, amountCents int64, brand string) string {
	metadata := "{}"
	if brand != "" {
		metadata = fmt.Sprintf(`{"brand": %q, "donor_email": "donor@example.com"}`, brand)
	}
	return fmt.Sprintf(`{
		"id": %q,
		"object": "checkout.session",
		"payment_status": "paid",
		"amount_total": %d,
		"currency": "usd",
		"payment_intent": %q,
		"customer_details": {"email": "payer@example.com"},
		"payment_method_types": ["card"],
		"metadata": %s
	}`, sessionID, amountCents, intentID, metadata)
}

func chargeJSON(intentID string, amountRefunded int64) string {
	return fmt.Sprintf(`{
		"id": "ch_%s",
		"object": "charge",
		"payment_intent": %q,
		"amount_refunded": %d
	}`, uuid.NewString()[:8], intentID, amountRefunded)
}

func (s *WebhookSuite) adminToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(s.Config.JWT.Duration)
	require.NoError(t, err)
	service := pkgjwt.NewService(s.Config.JWT.Secret, duration)
	token, err := service.GenerateToken(uuid.New(), "admin")
	require.NoError(t, err)
	return token
}

func (s *WebhookSuite) donationStatus(t *testing.T, sessionID string) string {
	t.Helper()
	row, err := dbtest.FindDonation(s.DB, sessionID)
	require.NoError(t, err)
	return row.Status
}

// =============================================================================
// TestCheckoutCompleted - Donation recording and coupon issuance
// =============================================================================

func (s *WebhookSuite) TestCheckoutCompleted() {
	s.Run("Normal case: completed checkout records donation with estimated fee", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_001", "pi_e2e_001", 10000, "coffee-roasters")

		code := s.deliver("checkout.session.completed", session)
		require.Equal(t, http.StatusOK, code)

		row, err := dbtest.FindDonation(s.DB, "cs_e2e_001")
		require.NoError(t, err)
		// FeeSource is stubbed out, so economics come from the estimate:
		// round(10000 * 0.029) + 30 = 320
		require.Equal(t, int64(10000), row.AmountCents)
		require.Equal(t, int64(320), row.FeeCents)
		require.Equal(t, int64(9680), row.NetCents)
		require.Equal(t, "completed", row.Status)

		count, err := dbtest.CountCoupons(s.DB, row.ID)
		require.NoError(t, err)
		require.Equal(t, 10, count)
	})

	s.Run("Normal case: duplicate delivery records exactly one donation and one batch", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_002", "pi_e2e_002", 10000, "coffee-roasters")

		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))
		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))

		count, err := dbtest.CountDonations(s.DB, "cs_e2e_002")
		require.NoError(t, err)
		require.Equal(t, 1, count)

		row, err := dbtest.FindDonation(s.DB, "cs_e2e_002")
		require.NoError(t, err)
		coupons, err := dbtest.CountCoupons(s.DB, row.ID)
		require.NoError(t, err)
		require.Equal(t, 10, coupons)
	})

	s.Run("Normal case: donation below tier threshold issues 500-cent coupons", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_003", "pi_e2e_003", 4700, "tea-merchants")

		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))

		row, err := dbtest.FindDonation(s.DB, "cs_e2e_003")
		require.NoError(t, err)

		var count int
		var minValue, maxValue int64
		err = s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*), MIN(value_cents), MAX(value_cents) FROM coupons WHERE donation_id = $1",
			row.ID,
		).Scan(&count, &minValue, &maxValue)
		require.NoError(t, err)
		require.Equal(t, 9, count)
		require.Equal(t, int64(500), minValue)
		require.Equal(t, int64(500), maxValue)
	})

	s.Run("Edge case: donation without brand metadata issues no coupons", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_004", "pi_e2e_004", 10000, "")

		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))

		row, err := dbtest.FindDonation(s.DB, "cs_e2e_004")
		require.NoError(t, err)
		count, err := dbtest.CountCoupons(s.DB, row.ID)
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	s.Run("Edge case: unknown event types are acknowledged without side effects", func() {
		t := s.T()
		code := s.deliver("customer.subscription.created", `{"id": "sub_e2e_001"}`)
		require.Equal(t, http.StatusOK, code)
	})

	s.Run("Error case: tampered payload is rejected with 400", func() {
		t := s.T()
		payload := s.eventPayload("checkout.session.completed",
			checkoutSessionJSON("cs_e2e_005", "pi_e2e_005", 10000, "coffee-roasters"))
		header := s.signPayload([]byte("tampered body"))

		rec := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload,
			map[string]string{"Stripe-Signature": header})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		_, err := dbtest.FindDonation(s.DB, "cs_e2e_005")
		require.Error(t, err)
	})
}

// =============================================================================
// TestRefundFlow - Refund status transitions
// =============================================================================

func (s *WebhookSuite) TestRefundFlow() {
	s.Run("Normal case: partial then full refund walks the status forward", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_010", "pi_e2e_010", 10000, "coffee-roasters")
		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))

		require.Equal(t, http.StatusOK, s.deliver("charge.refunded", chargeJSON("pi_e2e_010", 4000)))
		require.Equal(t, "partially_refunded", s.donationStatus(t, "cs_e2e_010"))

		require.Equal(t, http.StatusOK, s.deliver("charge.refunded", chargeJSON("pi_e2e_010", 10000)))
		require.Equal(t, "refunded", s.donationStatus(t, "cs_e2e_010"))
	})

	s.Run("Normal case: redelivered refund event is a fixed point", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_011", "pi_e2e_011", 10000, "coffee-roasters")
		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))

		require.Equal(t, http.StatusOK, s.deliver("charge.refunded", chargeJSON("pi_e2e_011", 10000)))
		require.Equal(t, http.StatusOK, s.deliver("charge.refunded", chargeJSON("pi_e2e_011", 10000)))
		require.Equal(t, "refunded", s.donationStatus(t, "cs_e2e_011"))
	})

	s.Run("Edge case: refund for unrecorded payment intent is acknowledged", func() {
		t := s.T()
		code := s.deliver("charge.refunded", chargeJSON("pi_e2e_unknown", 500))
		require.Equal(t, http.StatusOK, code)
	})
}

// =============================================================================
// TestAdminReads - JWT-protected reconciliation endpoints
// =============================================================================

func (s *WebhookSuite) TestAdminReads() {
	s.Run("Normal case: admin can read donation and its coupon batch", func() {
		t := s.T()
		session := checkoutSessionJSON("cs_e2e_020", "pi_e2e_020", 6200, "coffee-roasters")
		require.Equal(t, http.StatusOK, s.deliver("checkout.session.completed", session))

		token := s.adminToken(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, donationsURL+"/cs_e2e_020", nil, token)
		var donation resdto.DonationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &donation)
		require.Equal(t, "cs_e2e_020", donation.SessionID)
		require.Equal(t, int64(6200), donation.AmountCents)
		require.Equal(t, "completed", donation.Status)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, donationsURL+"/cs_e2e_020/coupons", nil, token)
		var coupons []*resdto.CouponResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &coupons)
		// 6200¢ is over the tier threshold: floor(6200/1000) = 6 coupons
		require.Len(t, coupons, 6)
		for _, c := range coupons {
			require.Equal(t, int64(1000), c.ValueCents)
			require.Equal(t, "available", c.Status)
		}

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, donationsURL, nil, token)
		var list []*resdto.DonationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		require.Len(t, list, 1)
	})

	s.Run("Error case: 401 without a bearer token", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, donationsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	s.Run("Error case: 403 for a non-admin role", func() {
		t := s.T()
		duration, err := time.ParseDuration(s.Config.JWT.Duration)
		require.NoError(t, err)
		service := pkgjwt.NewService(s.Config.JWT.Secret, duration)
		token, err := service.GenerateToken(uuid.New(), "viewer")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, donationsURL, nil, token)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("Error case: 404 for an unknown session id", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, donationsURL+"/cs_missing", nil, s.adminToken(t))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
