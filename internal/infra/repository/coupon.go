package repository

import (
	"context"
	"fmt"
	"strings"

	"giveledger/internal/domain/coupon"
	"giveledger/internal/infra"
	"giveledger/internal/infra/db"
)

type CouponRepository struct {
	db db.Queryer
}

func NewCouponRepository(q db.Queryer) *CouponRepository {
	return &CouponRepository{db: q}
}

// InsertBatch writes the issuance batch as one multi-row statement: either
// every coupon for the donation exists afterwards or none does. A generated
// code colliding with an existing one surfaces as DUPLICATE_KEY and fails
// the whole batch.
func (r *CouponRepository) InsertBatch(ctx context.Context, coupons []*coupon.Coupon) error {
	if len(coupons) == 0 {
		return nil
	}

	const columns = 6
	var sb strings.Builder
	sb.WriteString(`INSERT INTO coupons (code, value_cents, brand, donation_id, status, expires_at) VALUES `)

	args := make([]any, 0, len(coupons)*columns)
	for i, c := range coupons {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * columns
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args,
			c.Code().String(),
			c.ValueCents(),
			c.Brand(),
			c.DonationID(),
			string(c.Status()),
			c.ExpiresAt(),
		)
	}

	if _, err := r.db.Exec(ctx, sb.String(), args...); err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coupon code collision in batch", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert coupon batch", err)
	}
	return nil
}
