package response

import (
	"log/slog"
	"time"

	"giveledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DonationResponse struct {
	ID              uuid.UUID  `json:"id"`
	SessionID       string     `json:"sessionId"`
	PaymentIntentID string     `json:"paymentIntentId"`
	AmountCents     int64      `json:"amountCents"`
	Currency        string     `json:"currency"`
	FeeCents        int64      `json:"feeCents"`
	NetCents        int64      `json:"netCents"`
	DonorID         *uuid.UUID `json:"donorId,omitempty"`
	DonorEmail      string     `json:"donorEmail"`
	Brand           *string    `json:"brand,omitempty"`
	Message         *string    `json:"message,omitempty"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"paymentMethod"`
	ReceiptURL      *string    `json:"receiptUrl,omitempty"`
	DeclineCode     *string    `json:"declineCode,omitempty"`
	DeclineMessage  *string    `json:"declineMessage,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type DonationListResponse struct {
	ID          uuid.UUID `json:"id"`
	SessionID   string    `json:"sessionId"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Brand       *string   `json:"brand,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CouponResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	ValueCents int64     `json:"valueCents"`
	Brand      string    `json:"brand"`
	DonationID uuid.UUID `json:"donationId"`
	Status     string    `json:"status"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromDonationView(view *queries.DonationView) *DonationResponse {
	var resp DonationResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map donation view", "error", err.Error())
	}
	return &resp
}

func FromDonationListItems(items []*queries.DonationListItem) []*DonationListResponse {
	result := make([]*DonationListResponse, 0, len(items))
	for _, item := range items {
		var resp DonationListResponse
		if err := copier.Copy(&resp, item); err != nil {
			slog.Error("failed to map donation list item", "error", err.Error())
			continue
		}
		result = append(result, &resp)
	}
	return result
}

func FromCouponViews(views []*queries.CouponView) []*CouponResponse {
	result := make([]*CouponResponse, 0, len(views))
	for _, view := range views {
		var resp CouponResponse
		if err := copier.Copy(&resp, view); err != nil {
			slog.Error("failed to map coupon view", "error", err.Error())
			continue
		}
		result = append(result, &resp)
	}
	return result
}
