package readstore

import (
	"context"

	"giveledger/internal/infra"
	"giveledger/internal/infra/db"
	"giveledger/internal/pkg/pgconv"
	"giveledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DonationReadStore struct {
	db db.Queryer
}

func NewDonationReadStore(q db.Queryer) *DonationReadStore {
	return &DonationReadStore{db: q}
}

func (r *DonationReadStore) FindBySessionID(ctx context.Context, sessionID string) (*queries.DonationView, error) {
	const query = `
		SELECT id, session_id, payment_intent_id, amount_cents, currency,
		       fee_cents, net_cents, donor_id, donor_email, brand, message,
		       status, payment_method, receipt_url, decline_code,
		       decline_message, created_at, updated_at
		FROM donations
		WHERE session_id = $1`

	var (
		view           queries.DonationView
		donorID        pgtype.UUID
		brand          pgtype.Text
		message        pgtype.Text
		receiptURL     pgtype.Text
		declineCode    pgtype.Text
		declineMessage pgtype.Text
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&view.ID,
		&view.SessionID,
		&view.PaymentIntentID,
		&view.AmountCents,
		&view.Currency,
		&view.FeeCents,
		&view.NetCents,
		&donorID,
		&view.DonorEmail,
		&brand,
		&message,
		&view.Status,
		&view.PaymentMethod,
		&receiptURL,
		&declineCode,
		&declineMessage,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("donation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find donation by session id", err)
	}

	view.DonorID = pgconv.UUIDPtrFromPgtype(donorID)
	view.Brand = pgconv.StringPtrFromPgtype(brand)
	view.Message = pgconv.StringPtrFromPgtype(message)
	view.ReceiptURL = pgconv.StringPtrFromPgtype(receiptURL)
	view.DeclineCode = pgconv.StringPtrFromPgtype(declineCode)
	view.DeclineMessage = pgconv.StringPtrFromPgtype(declineMessage)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func (r *DonationReadStore) ListRecent(ctx context.Context, limit int32) ([]*queries.DonationListItem, error) {
	const query = `
		SELECT id, session_id, amount_cents, currency, brand, status, created_at
		FROM donations
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list donations", err)
	}
	defer rows.Close()

	var result []*queries.DonationListItem
	for rows.Next() {
		var (
			item      queries.DonationListItem
			brand     pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.AmountCents,
			&item.Currency,
			&brand,
			&item.Status,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan donation row", err)
		}
		item.Brand = pgconv.StringPtrFromPgtype(brand)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate donation rows", err)
	}

	return result, nil
}

func (r *DonationReadStore) CouponsByDonationID(ctx context.Context, donationID uuid.UUID) ([]*queries.CouponView, error) {
	const query = `
		SELECT id, code, value_cents, brand, donation_id, status, expires_at, created_at
		FROM coupons
		WHERE donation_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, donationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons for donation", err)
	}
	defer rows.Close()

	var result []*queries.CouponView
	for rows.Next() {
		var (
			view      queries.CouponView
			expiresAt pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID,
			&view.Code,
			&view.ValueCents,
			&view.Brand,
			&view.DonationID,
			&view.Status,
			&expiresAt,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		view.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}

	return result, nil
}
