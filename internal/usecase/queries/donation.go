package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type DonationView struct {
	ID              uuid.UUID
	SessionID       string
	PaymentIntentID string
	AmountCents     int64
	Currency        string
	FeeCents        int64
	NetCents        int64
	DonorID         *uuid.UUID
	DonorEmail      string
	Brand           *string
	Message         *string
	Status          string
	PaymentMethod   string
	ReceiptURL      *string
	DeclineCode     *string
	DeclineMessage  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DonationListItem struct {
	ID          uuid.UUID
	SessionID   string
	AmountCents int64
	Currency    string
	Brand       *string
	Status      string
	CreatedAt   time.Time
}

type CouponView struct {
	ID         uuid.UUID
	Code       string
	ValueCents int64
	Brand      string
	DonationID uuid.UUID
	Status     string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type DonationReadStore interface {
	FindBySessionID(ctx context.Context, sessionID string) (*DonationView, error)
	ListRecent(ctx context.Context, limit int32) ([]*DonationListItem, error)
	CouponsByDonationID(ctx context.Context, donationID uuid.UUID) ([]*CouponView, error)
}

type DonationQueries interface {
	GetBySessionID(ctx context.Context, sessionID string) (*DonationView, error)
	ListRecent(ctx context.Context, limit int32) ([]*DonationListItem, error)
	CouponsForDonation(ctx context.Context, sessionID string) ([]*CouponView, error)
}

type donationQueriesImpl struct {
	store DonationReadStore
}

func NewDonationQueries(store DonationReadStore) DonationQueries {
	return &donationQueriesImpl{store: store}
}

func (q *donationQueriesImpl) GetBySessionID(ctx context.Context, sessionID string) (*DonationView, error) {
	return q.store.FindBySessionID(ctx, sessionID)
}

func (q *donationQueriesImpl) ListRecent(ctx context.Context, limit int32) ([]*DonationListItem, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return q.store.ListRecent(ctx, limit)
}

func (q *donationQueriesImpl) CouponsForDonation(ctx context.Context, sessionID string) ([]*CouponView, error) {
	view, err := q.store.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return q.store.CouponsByDonationID(ctx, view.ID)
}
