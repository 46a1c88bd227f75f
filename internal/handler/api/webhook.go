package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"giveledger/internal/infra/stripegw"
	"giveledger/internal/pkg/errs"
	"giveledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
)

// Stripe's recommended cap on webhook request bodies.
const maxWebhookBodyBytes = int64(65536)

type WebhookHandler struct {
	verifier *stripegw.Verifier
	cmds     commands.PaymentCommands
}

func NewWebhookHandler(verifier *stripegw.Verifier, cmds commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, cmds: cmds}
}

// @Summary Stripe webhook endpoint
// @Description Receives and reconciles asynchronous payment events
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, errs.ErrSecretMissing) {
			slog.Error("webhook signing secret is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook misconfigured"})
			return
		}
		slog.Warn("webhook signature verification failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	if err := h.dispatch(c, event); err != nil {
		// Non-2xx makes the provider redeliver; safe because recording is
		// idempotent on the session id.
		slog.Error("webhook event processing failed",
			"event_id", event.ID,
			"event_type", string(event.Type),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// dispatch routes a verified event to its handler. Event types outside the
// handled set are acknowledged, never rejected: a non-2xx would make the
// provider retry deliveries we intend to ignore.
func (h *WebhookHandler) dispatch(c *gin.Context, event stripe.Event) error {
	ctx := c.Request.Context()

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		session, err := parseCheckoutSession(event)
		if err != nil {
			return err
		}
		if event.Type == stripe.EventTypeCheckoutSessionCompleted &&
			session.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
			// Delayed payment method; the async_payment_succeeded event will
			// carry the outcome.
			slog.Info("checkout completed but unpaid, awaiting async payment", "session_id", session.ID)
			return nil
		}
		_, err = h.cmds.RecordCompletedCheckout(ctx, toCheckoutCompleted(session))
		return err

	case stripe.EventTypeCheckoutSessionAsyncPaymentFailed:
		session, err := parseCheckoutSession(event)
		if err != nil {
			return err
		}
		return h.cmds.MarkFailed(ctx, commands.CheckoutFailed{SessionID: session.ID})

	case stripe.EventTypeCheckoutSessionExpired:
		session, err := parseCheckoutSession(event)
		if err != nil {
			return err
		}
		return h.cmds.MarkExpired(ctx, commands.CheckoutExpired{SessionID: session.ID})

	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return errs.Mark(err, errs.ErrMalformedPayload)
		}
		if charge.PaymentIntent == nil {
			slog.Warn("refunded charge has no payment intent", "charge_id", charge.ID)
			return nil
		}
		return h.cmds.ApplyRefund(ctx, commands.RefundReceived{
			PaymentIntentID:     charge.PaymentIntent.ID,
			AmountRefundedCents: charge.AmountRefunded,
		})

	case stripe.EventTypePaymentIntentSucceeded:
		// The donation is recorded off the checkout session event; nothing
		// further to do here.
		slog.Info("payment intent succeeded", "event_id", event.ID)
		return nil

	case stripe.EventTypePaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return errs.Mark(err, errs.ErrMalformedPayload)
		}
		evt := commands.PaymentDeclined{PaymentIntentID: pi.ID}
		if pi.LastPaymentError != nil {
			evt.DeclineCode = string(pi.LastPaymentError.Code)
			evt.DeclineMessage = pi.LastPaymentError.Msg
		}
		return h.cmds.RecordDecline(ctx, evt)

	default:
		slog.Info("unhandled webhook event type, acknowledging",
			"event_id", event.ID,
			"event_type", string(event.Type))
		return nil
	}
}

func parseCheckoutSession(event stripe.Event) (*stripe.CheckoutSession, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedPayload)
	}
	return &session, nil
}

func toCheckoutCompleted(session *stripe.CheckoutSession) commands.CheckoutCompleted {
	evt := commands.CheckoutCompleted{
		SessionID:   session.ID,
		AmountCents: session.AmountTotal,
		Currency:    string(session.Currency),
		Metadata:    session.Metadata,
	}
	if session.PaymentIntent != nil {
		evt.PaymentIntentID = session.PaymentIntent.ID
	}
	if session.CustomerDetails != nil {
		evt.ProviderEmail = session.CustomerDetails.Email
	}
	if len(session.PaymentMethodTypes) > 0 {
		evt.PaymentMethod = session.PaymentMethodTypes[0]
	}
	return evt
}
