package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Donation errors
	ErrDonationNotFound      = errors.New("donation not found")
	ErrDonationAlreadyExists = errors.New("donation already recorded for session")

	// Coupon errors
	ErrCouponBatchFailed = errors.New("coupon batch insert failed")

	// Webhook errors
	ErrSignatureInvalid = errors.New("webhook signature verification failed")
	ErrSecretMissing    = errors.New("webhook signing secret is not configured")
	ErrUnhandledEvent   = errors.New("unhandled event type")
	ErrMalformedPayload = errors.New("malformed event payload")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
