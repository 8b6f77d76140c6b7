package collection

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/warrantify/goapi/domain"
)

// SecondsPerMonth is the average month, a Gregorian year over twelve
const SecondsPerMonth = 2629746

var (
	secondsPerMonth = decimal.NewFromInt(SecondsPerMonth)
	maxSeconds      = decimal.NewFromInt(math.MaxInt64)
)

// MonthsToSeconds converts a warranty period to whole seconds, rounding half
// away from zero. Periods longer than math.MaxInt64 seconds are rejected.
func MonthsToSeconds(months decimal.Decimal) (uint64, error) {
	if months.IsNegative() {
		return 0, nil
	}
	seconds := months.Mul(secondsPerMonth).Round(0)
	if seconds.GreaterThan(maxSeconds) {
		return 0, xerrors.Errorf("warranty period of %s months is too long: %w", months, domain.ErrBadParamInput)
	}
	n := seconds.BigInt()
	if !n.IsUint64() {
		return 0, xerrors.Errorf("warranty period of %s months: %w", months, domain.ErrBadParamInput)
	}
	return n.Uint64(), nil
}

// SecondsToMonths converts a warranty period back to months with one decimal place
func SecondsToMonths(seconds uint64) decimal.Decimal {
	return decimal.NewFromInt(int64(seconds)).DivRound(secondsPerMonth, 1)
}
