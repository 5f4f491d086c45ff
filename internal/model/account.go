package model

import "github.com/shopspring/decimal"

// AccountTier classifies accounts by service level. It is carried on the
// account record but plays no role in any computation.
type AccountTier string

const (
	TierPremium  AccountTier = "premium"
	TierStandard AccountTier = "standard"
	TierBasic    AccountTier = "basic"
)

// Account represents one bank account held in the store.
type Account struct {
	Owner        string
	Username     string // derived login handle, assigned at store construction
	Movements    []decimal.Decimal
	InterestRate decimal.Decimal // percent applied to each qualifying deposit
	PIN          int
	Tier         AccountTier
}

// Append records one signed movement at the end of the history.
// Positive = deposit, negative = withdrawal. Past movements are never
// edited or removed; closure removes the whole account instead.
func (a *Account) Append(amount decimal.Decimal) {
	a.Movements = append(a.Movements, amount)
}

// FirstName returns the first whitespace-separated token of the owner
// name, used for the welcome line.
func (a *Account) FirstName() string {
	for i := 0; i < len(a.Owner); i++ {
		if a.Owner[i] == ' ' {
			return a.Owner[:i]
		}
	}
	return a.Owner
}
