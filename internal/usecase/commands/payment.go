package commands

import (
	"context"
	"log/slog"

	"giveledger/internal/domain/coupon"
	"giveledger/internal/domain/donation"
	"giveledger/internal/pkg/clock"

	"github.com/google/uuid"
)

type RecordResult struct {
	DonationID      uuid.UUID
	AlreadyRecorded bool
	CouponsIssued   int
}

type PaymentCommands interface {
	// RecordCompletedCheckout turns a successful checkout event into a durable
	// donation row plus its coupon batch. Safe to call any number of times for
	// the same session id.
	RecordCompletedCheckout(ctx context.Context, evt CheckoutCompleted) (*RecordResult, error)
	MarkFailed(ctx context.Context, evt CheckoutFailed) error
	MarkExpired(ctx context.Context, evt CheckoutExpired) error
	ApplyRefund(ctx context.Context, evt RefundReceived) error
	RecordDecline(ctx context.Context, evt PaymentDeclined) error
}

type paymentUseCaseImpl struct {
	donations DonationRepository
	coupons   CouponRepository
	fees      *FeeResolver
	clock     clock.Clock
}

func NewPaymentCommands(donations DonationRepository, coupons CouponRepository, fees *FeeResolver, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{
		donations: donations,
		coupons:   coupons,
		fees:      fees,
		clock:     clk,
	}
}

func (uc *paymentUseCaseImpl) RecordCompletedCheckout(ctx context.Context, evt CheckoutCompleted) (*RecordResult, error) {
	eco, err := uc.fees.Resolve(ctx, evt.PaymentIntentID, evt.AmountCents)
	if err != nil {
		return nil, err
	}

	donorID := metadataUUID(evt.Metadata, "donor_id")
	brand := metadataString(evt.Metadata, "brand")
	message := metadataString(evt.Metadata, "message")

	donorEmail := evt.ProviderEmail
	if email := metadataString(evt.Metadata, "donor_email"); email != nil {
		donorEmail = *email
	}

	d, err := donation.NewDonation(
		evt.SessionID,
		evt.PaymentIntentID,
		eco,
		evt.Currency,
		donorID,
		donorEmail,
		brand,
		message,
		evt.PaymentMethod,
		evt.ReceiptURL,
	)
	if err != nil {
		return nil, err
	}

	id, inserted, err := uc.donations.InsertIfAbsent(ctx, d)
	if err != nil {
		// Propagated so the provider redelivers; the unique constraint makes
		// the retry safe.
		return nil, err
	}
	if !inserted {
		slog.Info("donation already recorded, skipping",
			"session_id", evt.SessionID,
			"donation_id", id)
		return &RecordResult{DonationID: id, AlreadyRecorded: true}, nil
	}

	// Coupon issuance is best-effort on top of the durable donation. A failed
	// batch is logged for manual backfill, never propagated: propagating would
	// make the provider redeliver an event whose donation is already recorded.
	issued := uc.issueCoupons(ctx, id, evt.AmountCents, brand)

	return &RecordResult{DonationID: id, CouponsIssued: issued}, nil
}

func (uc *paymentUseCaseImpl) issueCoupons(ctx context.Context, donationID uuid.UUID, amountCents int64, brand *string) int {
	if brand == nil {
		// Donations without a brand label issue nothing.
		return 0
	}

	batch, err := coupon.PlanIssuance(donationID, amountCents, *brand, uc.clock.Now())
	if err != nil {
		slog.Error("coupon issuance planning failed",
			"donation_id", donationID,
			"error", err.Error())
		return 0
	}
	if len(batch) == 0 {
		slog.Info("donation below minimum coupon value, no coupons issued",
			"donation_id", donationID,
			"amount_cents", amountCents)
		return 0
	}

	if err := uc.coupons.InsertBatch(ctx, batch); err != nil {
		slog.Error("coupon batch insert failed, donation stands without coupons",
			"donation_id", donationID,
			"coupon_count", len(batch),
			"error", err.Error())
		return 0
	}

	return len(batch)
}

func (uc *paymentUseCaseImpl) MarkFailed(ctx context.Context, evt CheckoutFailed) error {
	return uc.markSession(ctx, evt.SessionID, donation.StatusFailed)
}

func (uc *paymentUseCaseImpl) MarkExpired(ctx context.Context, evt CheckoutExpired) error {
	return uc.markSession(ctx, evt.SessionID, donation.StatusExpired)
}

func (uc *paymentUseCaseImpl) markSession(ctx context.Context, sessionID string, status donation.Status) error {
	updated, err := uc.donations.UpdateStatusBySessionID(ctx, sessionID, status)
	if err != nil {
		return err
	}
	if !updated {
		// Payment never reached the recording stage; nothing to mark.
		slog.Info("no recorded donation for session, ignoring lifecycle event",
			"session_id", sessionID,
			"status", status.String())
	}
	return nil
}

func (uc *paymentUseCaseImpl) ApplyRefund(ctx context.Context, evt RefundReceived) error {
	snap, err := uc.donations.FindByPaymentIntentID(ctx, evt.PaymentIntentID)
	if err != nil {
		return err
	}
	if snap == nil {
		slog.Info("refund event for unrecorded payment intent, ignoring",
			"payment_intent_id", evt.PaymentIntentID)
		return nil
	}

	// Recomputing from the cumulative refunded amount makes redelivery a
	// fixed point: the same event always lands on the same status.
	next := donation.ClassifyRefund(snap.AmountCents, evt.AmountRefundedCents)
	if snap.Status == next {
		return nil
	}
	if !snap.Status.CanTransitionTo(next) {
		slog.Warn("refund transition not allowed from current status",
			"donation_id", snap.ID,
			"current", snap.Status.String(),
			"next", next.String())
		return nil
	}

	return uc.donations.UpdateStatusByID(ctx, snap.ID, next)
}

func (uc *paymentUseCaseImpl) RecordDecline(ctx context.Context, evt PaymentDeclined) error {
	updated, err := uc.donations.AttachDeclineReason(ctx, evt.PaymentIntentID, evt.DeclineCode, evt.DeclineMessage)
	if err != nil {
		return err
	}
	if !updated {
		// Declines before any donation was recorded are still an analytics
		// signal worth keeping in the logs.
		slog.Info("payment declined before donation was recorded",
			"payment_intent_id", evt.PaymentIntentID,
			"decline_code", evt.DeclineCode,
			"decline_message", evt.DeclineMessage)
	}
	return nil
}

// Empty-string metadata values are treated as absent, not as the literal
// empty string.
func metadataString(md map[string]string, key string) *string {
	v, ok := md[key]
	if !ok || v == "" {
		return nil
	}
	return &v
}

func metadataUUID(md map[string]string, key string) *uuid.UUID {
	v := metadataString(md, key)
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		slog.Warn("metadata field is not a valid uuid, treating as absent", "key", key)
		return nil
	}
	return &id
}
