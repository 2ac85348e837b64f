package usecase

import "github.com/shopspring/decimal"

// AmountComparator decides whether two nullable amounts are equal. A null on
// either side is never equal to anything; a missing amount must surface as a
// mismatch rather than silently match.
type AmountComparator func(a, b decimal.NullDecimal) bool

// DefaultTolerance absorbs sub-cent rounding differences between the two
// ledgers.
var DefaultTolerance = decimal.NewFromFloat(0.01)

// ToleranceComparator builds a comparator that treats a and b as equal when
// |a-b| <= max(tolerance, tolerance*max(|a|,|b|)). The relative term keeps
// one tolerance parameter meaningful for both near-zero and large-magnitude
// amounts. Negative tolerances are clamped to zero.
func ToleranceComparator(tolerance decimal.Decimal) AmountComparator {
	if tolerance.IsNegative() {
		tolerance = decimal.Zero
	}
	return func(a, b decimal.NullDecimal) bool {
		if !a.Valid || !b.Valid {
			return false
		}
		diff := a.Decimal.Sub(b.Decimal).Abs()
		bound := decimal.Max(tolerance, tolerance.Mul(decimal.Max(a.Decimal.Abs(), b.Decimal.Abs())))
		return diff.LessThanOrEqual(bound)
	}
}
