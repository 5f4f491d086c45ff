package store

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultAccounts returns the built-in demo accounts used when no seed
// profile is configured.
func DefaultAccounts() []*model.Account {
	return []*model.Account{
		{
			Owner:        "Marius Bogdan",
			Movements:    movs(200, 450, -400, 3000, -650, -130, 70, 1300),
			InterestRate: decimal.RequireFromString("1.2"),
			PIN:          1111,
			Tier:         model.TierPremium,
		},
		{
			Owner:        "Jessica Davis",
			Movements:    movs(5000, 3400, -150, -790, -3210, -1000, 8500, -30),
			InterestRate: decimal.RequireFromString("1.5"),
			PIN:          2222,
			Tier:         model.TierStandard,
		},
		{
			Owner:        "Steven Thomas Williams",
			Movements:    movs(200, -200, 340, -300, -20, 50, 400, -460),
			InterestRate: decimal.RequireFromString("0.7"),
			PIN:          3333,
			Tier:         model.TierPremium,
		},
		{
			Owner:        "Sarah Smith",
			Movements:    movs(430, 1000, 700, 50, 90),
			InterestRate: decimal.RequireFromString("1"),
			PIN:          4444,
			Tier:         model.TierBasic,
		},
	}
}

func movs(amounts ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		out[i] = decimal.NewFromInt(a)
	}
	return out
}
