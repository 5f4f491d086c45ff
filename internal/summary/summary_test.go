package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bankist-dev/bankist/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func movs(amounts ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		out[i] = decimal.NewFromInt(a)
	}
	return out
}

func TestBalance(t *testing.T) {
	m := movs(200, 450, -400, 3000, -650, -130, 70, 1300)
	assert.True(t, Balance(m).Equal(dec("3840")))

	assert.True(t, Balance(nil).IsZero())
	assert.True(t, Balance(movs(-100, 30)).Equal(dec("-70")), "balance may go negative")
}

func TestTotals(t *testing.T) {
	m := movs(200, 450, -400, 3000, -650, -130, 70, 1300)

	in := TotalIn(m)
	out := TotalOut(m)
	assert.True(t, in.Equal(dec("5020")))
	assert.True(t, out.Equal(dec("1180")))

	// Total in minus total out always equals the balance.
	assert.True(t, in.Sub(out).Equal(Balance(m)))
}

func TestInterest_QualificationFloor(t *testing.T) {
	// 90 at 1.0% earns 0.9, below the floor, so no interest at all.
	assert.True(t, Interest(movs(90), dec("1")).IsZero())

	// 100 at 1.0% earns exactly 1 and qualifies.
	assert.True(t, Interest(movs(100), dec("1")).Equal(dec("1")))
}

func TestInterest_SkipsWithdrawals(t *testing.T) {
	// Withdrawals never earn interest, whatever their magnitude.
	got := Interest(movs(-5000, 200), dec("1.5"))
	assert.True(t, got.Equal(dec("3")))
}

func TestCompute(t *testing.T) {
	a := &model.Account{
		Movements:    movs(430, 1000, 700, 50, 90),
		InterestRate: dec("1"),
	}
	s := Compute(a)
	assert.True(t, s.In.Equal(dec("2270")))
	assert.True(t, s.Out.IsZero())
	// 4.3 + 10 + 7 qualify; 0.5 and 0.9 fall under the floor.
	assert.True(t, s.Interest.Equal(dec("21.3")))
}
