package commands

import (
	"context"
	"log/slog"

	"giveledger/internal/domain/donation"
)

// FeeResolver produces the donation's economics. It prefers the provider's
// settled fee and degrades to the deterministic estimate; the estimate must
// never block recording the donation.
type FeeResolver struct {
	source FeeSource
}

func NewFeeResolver(source FeeSource) *FeeResolver {
	return &FeeResolver{source: source}
}

func (r *FeeResolver) Resolve(ctx context.Context, paymentIntentID string, amountCents int64) (donation.Economics, error) {
	if paymentIntentID != "" {
		feeCents, err := r.source.SettlementFeeCents(ctx, paymentIntentID)
		if err == nil {
			if eco, ecoErr := donation.NewEconomics(amountCents, feeCents); ecoErr == nil {
				return eco, nil
			}
			slog.Warn("authoritative fee inconsistent with gross amount, falling back to estimate",
				"payment_intent_id", paymentIntentID,
				"amount_cents", amountCents,
				"fee_cents", feeCents)
		} else {
			slog.Warn("settlement fee lookup failed, falling back to estimate",
				"payment_intent_id", paymentIntentID,
				"error", err.Error())
		}
	}

	estCents := donation.EstimateFeeCents(amountCents)
	if estCents > amountCents {
		// Micro-donations below the flat fee: the processor keeps everything.
		estCents = amountCents
	}
	return donation.NewEconomics(amountCents, estCents)
}
