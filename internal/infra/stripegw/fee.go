package stripegw

import (
	"context"

	"giveledger/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// FeeSource reads the settled processing fee off the payment intent's latest
// charge. The balance transaction only exists once the charge settles, so an
// "unsettled" result is routine and the caller estimates instead.
type FeeSource struct {
	api *client.API
}

func NewFeeSource(api *client.API) *FeeSource {
	return &FeeSource{api: api}
}

func (s *FeeSource) SettlementFeeCents(ctx context.Context, paymentIntentID string) (int64, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}
	params.AddExpand("latest_charge.balance_transaction")

	pi, err := s.api.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return 0, errs.Wrap(err, "failed to fetch payment intent")
	}
	if pi.LatestCharge == nil || pi.LatestCharge.BalanceTransaction == nil {
		return 0, errs.New("balance transaction not settled yet")
	}

	return pi.LatestCharge.BalanceTransaction.Fee, nil
}
