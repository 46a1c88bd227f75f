//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// resets all mutable tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE coupons, donations RESTART IDENTITY CASCADE")
	return err
}

// CountDonations returns the number of donation rows for a session id.
func CountDonations(pool *pgxpool.Pool, sessionID string) (int, error) {
	ctx := context.Background()
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM donations WHERE session_id = $1", sessionID).Scan(&count)
	return count, err
}

// CountCoupons returns the number of coupons issued for a donation.
func CountCoupons(pool *pgxpool.Pool, donationID uuid.UUID) (int, error) {
	ctx := context.Background()
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM coupons WHERE donation_id = $1", donationID).Scan(&count)
	return count, err
}

type DonationRow struct {
	ID          uuid.UUID
	AmountCents int64
	FeeCents    int64
	NetCents    int64
	Status      string
}

// FindDonation loads the reconciliation-relevant columns for a session id.
func FindDonation(pool *pgxpool.Pool, sessionID string) (*DonationRow, error) {
	ctx := context.Background()
	var row DonationRow
	err := pool.QueryRow(ctx,
		"SELECT id, amount_cents, fee_cents, net_cents, status FROM donations WHERE session_id = $1",
		sessionID,
	).Scan(&row.ID, &row.AmountCents, &row.FeeCents, &row.NetCents, &row.Status)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
