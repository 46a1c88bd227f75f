package repository

import (
	"context"
	"errors"

	"giveledger/internal/domain/donation"
	"giveledger/internal/infra"
	"giveledger/internal/infra/db"
	"giveledger/internal/pkg/pgconv"
	"giveledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type DonationRepository struct {
	db db.Queryer
}

func NewDonationRepository(q db.Queryer) *DonationRepository {
	return &DonationRepository{db: q}
}

// InsertIfAbsent leans on the session_id unique constraint: concurrent
// duplicate deliveries race on the same insert and exactly one wins. The
// loser gets the winner's id back with inserted=false.
func (r *DonationRepository) InsertIfAbsent(ctx context.Context, d *donation.Donation) (uuid.UUID, bool, error) {
	const insertSQL = `
		INSERT INTO donations (
			session_id, payment_intent_id, amount_cents, currency,
			fee_cents, net_cents, donor_id, donor_email,
			brand, message, status, payment_method, receipt_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (session_id) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertSQL,
		d.SessionID(),
		d.PaymentIntentID(),
		d.AmountCents(),
		d.Currency(),
		d.FeeCents(),
		d.NetCents(),
		pgconv.UUIDPtrToPgtype(d.DonorID()),
		d.DonorEmail(),
		pgconv.StringPtrToPgtype(d.Brand()),
		pgconv.StringPtrToPgtype(d.Message()),
		d.Status().String(),
		d.PaymentMethod(),
		pgconv.StringPtrToPgtype(d.ReceiptURL()),
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, false, infra.WrapRepoErr("failed to insert donation", err)
	}

	// DO NOTHING suppressed the insert; fetch the existing row's id.
	const selectSQL = `SELECT id FROM donations WHERE session_id = $1`
	if err := r.db.QueryRow(ctx, selectSQL, d.SessionID()).Scan(&id); err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to find existing donation after conflict", err)
	}
	return id, false, nil
}

func (r *DonationRepository) FindBySessionID(ctx context.Context, sessionID string) (*commands.DonationSnapshot, error) {
	const query = `
		SELECT id, session_id, payment_intent_id, amount_cents, status
		FROM donations
		WHERE session_id = $1`

	return r.scanSnapshot(ctx, query, sessionID)
}

func (r *DonationRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*commands.DonationSnapshot, error) {
	if paymentIntentID == "" {
		return nil, nil
	}

	const query = `
		SELECT id, session_id, payment_intent_id, amount_cents, status
		FROM donations
		WHERE payment_intent_id = $1`

	return r.scanSnapshot(ctx, query, paymentIntentID)
}

func (r *DonationRepository) scanSnapshot(ctx context.Context, query string, arg any) (*commands.DonationSnapshot, error) {
	var (
		snap      commands.DonationSnapshot
		rawStatus string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&snap.ID,
		&snap.SessionID,
		&snap.PaymentIntentID,
		&snap.AmountCents,
		&rawStatus,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find donation", err)
	}

	status, err := donation.NewStatus(rawStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("donation row has unknown status", err)
	}
	snap.Status = status
	return &snap, nil
}

// Only completed donations may move to a failure-adjacent state; the status
// guard in the WHERE clause keeps the transition monotonic under redelivery.
func (r *DonationRepository) UpdateStatusBySessionID(ctx context.Context, sessionID string, status donation.Status) (bool, error) {
	const query = `
		UPDATE donations
		SET status = $2, updated_at = now()
		WHERE session_id = $1 AND status = $3`

	tag, err := r.db.Exec(ctx, query, sessionID, status.String(), donation.StatusCompleted.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update donation status by session", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DonationRepository) UpdateStatusByID(ctx context.Context, id uuid.UUID, status donation.Status) error {
	const query = `
		UPDATE donations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update donation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DonationRepository) AttachDeclineReason(ctx context.Context, paymentIntentID, code, message string) (bool, error) {
	if paymentIntentID == "" {
		return false, nil
	}

	const query = `
		UPDATE donations
		SET decline_code = $2, decline_message = $3, updated_at = now()
		WHERE payment_intent_id = $1`

	tag, err := r.db.Exec(ctx, query, paymentIntentID, code, message)
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach decline reason", err)
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
