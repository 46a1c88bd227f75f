package coupon

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusRedeemed  Status = "redeemed"
	StatusExpired   Status = "expired"
)

type Coupon struct {
	id         uuid.UUID
	code       Code
	valueCents int64
	brand      string
	donationID uuid.UUID
	status     Status
	expiresAt  time.Time
	createdAt  time.Time
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) ValueCents() int64     { return c.valueCents }
func (c *Coupon) Brand() string         { return c.brand }
func (c *Coupon) DonationID() uuid.UUID { return c.donationID }
func (c *Coupon) Status() Status        { return c.status }
func (c *Coupon) ExpiresAt() time.Time  { return c.expiresAt }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
