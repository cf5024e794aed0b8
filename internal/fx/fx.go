// Package fx provides currency conversion against an external FX-rate source.
//
// The rate lookup is an effectful, possibly slow, possibly failing network
// call. Callers pass a context so a lookup can be cancelled; every failure is
// surfaced as RATE_UNAVAILABLE and must abort the surrounding write.
package fx

import (
	"context"

	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
)

// RateSource supplies the exchange rate converting one unit of `from` into `to`.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Convert converts amount from one currency into another using the given
// source, rounded half-up to 2 decimal places. Same-currency conversions take
// the same path so the stored value is always rounded consistently.
func Convert(ctx context.Context, source RateSource, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rate, err := source.Rate(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, apperrors.WithMessage(apperrors.ErrRateUnavailable, "FX source returned a non-positive rate")
	}
	return amount.Mul(rate).Round(2), nil
}

// Static is a fixed-rate source for tests and offline development.
// Rates are keyed by "FROM/TO" currency pairs.
type Static struct {
	Rates map[string]decimal.Decimal
}

// Rate returns the configured rate for the pair, 1 for same-currency pairs,
// and RATE_UNAVAILABLE for unknown pairs.
func (s Static) Rate(_ context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := s.Rates[from+"/"+to]
	if !ok {
		return decimal.Decimal{}, apperrors.WithMessage(apperrors.ErrRateUnavailable, "no rate configured for "+from+"/"+to)
	}
	return rate, nil
}
