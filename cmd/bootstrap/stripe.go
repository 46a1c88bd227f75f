package bootstrap

import (
	"giveledger/internal/infra/stripegw"
	"giveledger/internal/pkg/config"

	"github.com/stripe/stripe-go/v82/client"
	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		NewStripeAPI,
		NewStripeVerifier,
	),
)

func NewStripeAPI(cfg config.Config) *client.API {
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)
	return api
}

func NewStripeVerifier(cfg config.Config) *stripegw.Verifier {
	return stripegw.NewVerifier(cfg.Stripe)
}
