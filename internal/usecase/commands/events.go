package commands

// Closed set of provider events this subsystem acts on. The webhook handler
// maps the provider SDK's loosely-typed payloads into these before anything
// touches the ledger; unknown event types never get this far.

type CheckoutCompleted struct {
	SessionID       string
	PaymentIntentID string
	AmountCents     int64
	Currency        string
	// ProviderEmail is the provider's own record of the payer; metadata may
	// override it.
	ProviderEmail string
	PaymentMethod string
	ReceiptURL    *string
	Metadata      map[string]string
}

type CheckoutFailed struct {
	SessionID string
}

type CheckoutExpired struct {
	SessionID string
}

type RefundReceived struct {
	PaymentIntentID     string
	AmountRefundedCents int64
}

type PaymentDeclined struct {
	PaymentIntentID string
	DeclineCode     string
	DeclineMessage  string
}
