// Package summary derives balance and summary figures from a movement
// history. Everything here is pure: figures are recomputed from the
// full history on every call, so there is no cached balance to go
// stale.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Summary holds the deposit/withdrawal/interest totals for one account.
type Summary struct {
	In       decimal.Decimal
	Out      decimal.Decimal // absolute value of withdrawals
	Interest decimal.Decimal
}

// Balance returns the signed sum of all movements. May be negative.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m)
	}
	return total
}

// TotalIn returns the sum of positive movements.
func TotalIn(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalOut returns the absolute sum of negative movements.
func TotalOut(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total.Abs()
}

// Interest returns the summed per-deposit interest at the given
// percentage rate. A deposit's interest amount is discarded when it is
// strictly below 1; this is a qualification floor, not rounding.
func Interest(movements []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.IsPositive() {
			continue
		}
		earned := m.Mul(rate).Div(hundred)
		if earned.GreaterThanOrEqual(one) {
			total = total.Add(earned)
		}
	}
	return total
}

// Compute returns the full summary for an account.
func Compute(a *model.Account) Summary {
	return Summary{
		In:       TotalIn(a.Movements),
		Out:      TotalOut(a.Movements),
		Interest: Interest(a.Movements, a.InterestRate),
	}
}
