// Package statement renders account-derived values for display and
// exports movement listings as CSV.
package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/summary"
)

// Direction labels a movement for display.
func Direction(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "deposit"
	}
	return "withdrawal"
}

// Welcome returns the post-login welcome line.
func Welcome(a *model.Account) string {
	return fmt.Sprintf("Welcome back, %s", a.FirstName())
}

// MovementLine formats one display row: 1-based index, direction label,
// signed amount with the currency suffix.
func MovementLine(index int, amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%d %s %s%s", index+1, Direction(amount), amount.String(), currency)
}

// BalanceLine formats the current balance.
func BalanceLine(balance decimal.Decimal, currency string) string {
	return fmt.Sprintf("Balance: %s%s", balance.String(), currency)
}

// SummaryLines formats the in/out/interest block.
func SummaryLines(s summary.Summary, currency string) []string {
	return []string{
		fmt.Sprintf("In: %s%s", s.In.String(), currency),
		fmt.Sprintf("Out: %s%s", s.Out.String(), currency),
		fmt.Sprintf("Interest: %s%s", s.Interest.String(), currency),
	}
}

// Render returns the full statement for a movement listing: movement
// rows, balance, then the summary block.
func Render(a *model.Account, movements []decimal.Decimal, currency string) []string {
	lines := make([]string, 0, len(movements)+4)
	for i, m := range movements {
		lines = append(lines, MovementLine(i, m, currency))
	}
	lines = append(lines, BalanceLine(summary.Balance(a.Movements), currency))
	lines = append(lines, SummaryLines(summary.Compute(a), currency)...)
	return lines
}
