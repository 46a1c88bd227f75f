package stripegw

import (
	"giveledger/internal/pkg/config"
	"giveledger/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Verifier authenticates raw webhook payloads against the signing secret.
// The exact request bytes must be used; re-serialized JSON breaks the HMAC.
type Verifier struct {
	secret string
}

func NewVerifier(cfg config.StripeConfig) *Verifier {
	return &Verifier{secret: cfg.WebhookSecret}
}

func (v *Verifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	if v.secret == "" {
		return stripe.Event{}, errs.ErrSecretMissing
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, v.secret)
	if err != nil {
		return stripe.Event{}, errs.Mark(err, errs.ErrSignatureInvalid)
	}
	return event, nil
}
