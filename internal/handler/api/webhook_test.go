//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"giveledger/internal/handler/api"
	"giveledger/internal/infra/stripegw"
	"giveledger/internal/pkg/config"
	"giveledger/internal/usecase/commands"
	"giveledger/tests/common/httptest"
	commandsmock "giveledger/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "whsec_test_secret"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)

	verifier := stripegw.NewVerifier(config.StripeConfig{WebhookSecret: testWebhookSecret})
	handler := api.NewWebhookHandler(verifier, s.mockCommands)
	s.router.POST("/api/webhooks/stripe", handler.HandleStripeEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

// eventPayload builds the provider's event envelope around a raw data object.
// The api_version field must match the SDK's pinned version or verification
// layer parsing rejects the event.
func eventPayload(eventType, dataObject string) []byte {
	return fmt.Appendf(nil, `{
		"id": "evt_test_001",
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {"object": %s}
	}`, stripe.APIVersion, eventType, dataObject)
}

// signatureHeader signs payload the way the provider does: HMAC-SHA256 over
// "<timestamp>.<payload>" carried as "t=<unix>,v1=<hex>".
func signatureHeader(payload []byte) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testWebhookSecret)
	return fmt.Sprintf("t=%d,v1=%x", now.Unix(), sig)
}

const completedSessionJSON = `{
	"id": "cs_test_001",
	"object": "checkout.session",
	"payment_status": "paid",
	"amount_total": 10000,
	"currency": "usd",
	"payment_intent": "pi_test_001",
	"customer_details": {"email": "payer@example.com"},
	"payment_method_types": ["card"],
	"metadata": {"brand": "coffee-roasters", "donor_email": "donor@example.com"}
}`

// ================================================================================
// HandleStripeEvent
// ================================================================================

func (s *WebhookHandlerTestSuite) TestHandleStripeEvent() {
	url := "/api/webhooks/stripe"

	s.Run("success: checkout.session.completed is recorded", func() {
		payload := eventPayload("checkout.session.completed", completedSessionJSON)

		expected := commands.CheckoutCompleted{
			SessionID:       "cs_test_001",
			PaymentIntentID: "pi_test_001",
			AmountCents:     10000,
			Currency:        "usd",
			ProviderEmail:   "payer@example.com",
			PaymentMethod:   "card",
			Metadata:        map[string]string{"brand": "coffee-roasters", "donor_email": "donor@example.com"},
		}
		s.mockCommands.EXPECT().RecordCompletedCheckout(gomock.Any(), expected).
			Return(&commands.RecordResult{DonationID: uuid.New(), CouponsIssued: 10}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["received"])
	})

	s.Run("success: unpaid completed session is acknowledged without recording", func() {
		session := `{
			"id": "cs_test_002",
			"object": "checkout.session",
			"payment_status": "unpaid",
			"amount_total": 10000,
			"currency": "usd"
		}`
		payload := eventPayload("checkout.session.completed", session)
		// No command expectation: the async_payment_succeeded event carries the outcome.

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: async_payment_succeeded is recorded", func() {
		payload := eventPayload("checkout.session.async_payment_succeeded", completedSessionJSON)

		s.mockCommands.EXPECT().RecordCompletedCheckout(gomock.Any(), gomock.Any()).
			Return(&commands.RecordResult{DonationID: uuid.New()}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: async_payment_failed marks the session failed", func() {
		session := `{"id": "cs_test_003", "object": "checkout.session"}`
		payload := eventPayload("checkout.session.async_payment_failed", session)

		s.mockCommands.EXPECT().MarkFailed(gomock.Any(), commands.CheckoutFailed{SessionID: "cs_test_003"}).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: session expiry marks the session expired", func() {
		session := `{"id": "cs_test_004", "object": "checkout.session"}`
		payload := eventPayload("checkout.session.expired", session)

		s.mockCommands.EXPECT().MarkExpired(gomock.Any(), commands.CheckoutExpired{SessionID: "cs_test_004"}).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: charge.refunded applies the cumulative refunded amount", func() {
		charge := `{
			"id": "ch_test_001",
			"object": "charge",
			"payment_intent": "pi_test_001",
			"amount_refunded": 4000
		}`
		payload := eventPayload("charge.refunded", charge)

		s.mockCommands.EXPECT().ApplyRefund(gomock.Any(), commands.RefundReceived{
			PaymentIntentID:     "pi_test_001",
			AmountRefundedCents: 4000,
		}).Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: refunded charge without payment intent is acknowledged", func() {
		charge := `{"id": "ch_test_002", "object": "charge", "amount_refunded": 500}`
		payload := eventPayload("charge.refunded", charge)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: payment_intent.payment_failed records the decline reason", func() {
		pi := `{
			"id": "pi_test_002",
			"object": "payment_intent",
			"last_payment_error": {"code": "card_declined", "message": "Your card was declined."}
		}`
		payload := eventPayload("payment_intent.payment_failed", pi)

		s.mockCommands.EXPECT().RecordDecline(gomock.Any(), commands.PaymentDeclined{
			PaymentIntentID: "pi_test_002",
			DeclineCode:     "card_declined",
			DeclineMessage:  "Your card was declined.",
		}).Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: payment_intent.succeeded is acknowledged without side effects", func() {
		pi := `{"id": "pi_test_003", "object": "payment_intent"}`
		payload := eventPayload("payment_intent.succeeded", pi)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: unknown event types are acknowledged, never rejected", func() {
		payload := eventPayload("customer.subscription.created", `{"id": "sub_test_001"}`)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["received"])
	})

	s.Run("error: 400 Bad Request when signature does not match payload", func() {
		payload := eventPayload("checkout.session.completed", completedSessionJSON)
		tampered := eventPayload("checkout.session.completed", `{"id": "cs_evil", "amount_total": 1}`)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, tampered,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request when signature header is missing", func() {
		payload := eventPayload("checkout.session.completed", completedSessionJSON)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request when signature timestamp is stale", func() {
		payload := eventPayload("checkout.session.completed", completedSessionJSON)
		stale := time.Now().Add(-time.Hour)
		sig := webhook.ComputeSignature(stale, payload, testWebhookSecret)
		header := fmt.Sprintf("t=%d,v1=%x", stale.Unix(), sig)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": header})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 500 Internal Server Error triggers provider redelivery on command failure", func() {
		payload := eventPayload("checkout.session.completed", completedSessionJSON)

		s.mockCommands.EXPECT().RecordCompletedCheckout(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("error: 500 Internal Server Error when signing secret is unconfigured", func() {
		unconfigured := gin.New()
		verifier := stripegw.NewVerifier(config.StripeConfig{})
		handler := api.NewWebhookHandler(verifier, s.mockCommands)
		unconfigured.POST(url, handler.HandleStripeEvent)

		payload := eventPayload("checkout.session.completed", completedSessionJSON)
		rec := httptest.PerformRawRequest(s.T(), unconfigured, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": signatureHeader(payload)})
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
