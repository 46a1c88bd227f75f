package donation

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	id              uuid.UUID
	sessionID       string
	paymentIntentID string
	economics       Economics
	currency        string
	donorID         *uuid.UUID
	donorEmail      string
	brand           *string
	message         *string
	status          Status
	paymentMethod   string
	receiptURL      *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewDonation builds the record for a just-completed payment. The session id
// is the idempotency key; everything optional arrives as a nil pointer.
func NewDonation(
	sessionID string,
	paymentIntentID string,
	economics Economics,
	currency string,
	donorID *uuid.UUID,
	donorEmail string,
	brand *string,
	message *string,
	paymentMethod string,
	receiptURL *string,
) (*Donation, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}

	return &Donation{
		sessionID:       sessionID,
		paymentIntentID: paymentIntentID,
		economics:       economics,
		currency:        currency,
		donorID:         donorID,
		donorEmail:      donorEmail,
		brand:           brand,
		message:         message,
		status:          StatusCompleted,
		paymentMethod:   paymentMethod,
		receiptURL:      receiptURL,
	}, nil
}

func (d *Donation) ID() uuid.UUID           { return d.id }
func (d *Donation) SessionID() string       { return d.sessionID }
func (d *Donation) PaymentIntentID() string { return d.paymentIntentID }
func (d *Donation) AmountCents() int64      { return d.economics.AmountCents }
func (d *Donation) FeeCents() int64         { return d.economics.FeeCents }
func (d *Donation) NetCents() int64         { return d.economics.NetCents }
func (d *Donation) Currency() string        { return d.currency }
func (d *Donation) DonorID() *uuid.UUID     { return d.donorID }
func (d *Donation) DonorEmail() string      { return d.donorEmail }
func (d *Donation) Brand() *string          { return d.brand }
func (d *Donation) Message() *string        { return d.message }
func (d *Donation) Status() Status          { return d.status }
func (d *Donation) PaymentMethod() string   { return d.paymentMethod }
func (d *Donation) ReceiptURL() *string     { return d.receiptURL }
func (d *Donation) CreatedAt() time.Time    { return d.createdAt }
func (d *Donation) UpdatedAt() time.Time    { return d.updatedAt }
