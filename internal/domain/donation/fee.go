package donation

import "math"

// Estimate parameters for when the authoritative balance transaction is not
// yet settled: 2.9% of the gross plus a 30-cent flat fee. The real fee varies
// by card origin, so the estimate is a stand-in, never a blocker.
const (
	estimateFeePercent   = 0.029
	estimateFeeFlatCents = 30
)

type Economics struct {
	AmountCents int64
	FeeCents    int64
	NetCents    int64
}

func NewEconomics(amountCents, feeCents int64) (Economics, error) {
	if amountCents < 0 {
		return Economics{}, ErrInvalidAmount
	}
	if feeCents < 0 || feeCents > amountCents {
		return Economics{}, ErrFeeExceedsAmount
	}
	return Economics{
		AmountCents: amountCents,
		FeeCents:    feeCents,
		NetCents:    amountCents - feeCents,
	}, nil
}

// EstimateFeeCents rounds to whole cents (currency minor unit precision).
func EstimateFeeCents(amountCents int64) int64 {
	return int64(math.Round(float64(amountCents)*estimateFeePercent)) + estimateFeeFlatCents
}
