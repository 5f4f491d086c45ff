package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/store"
	"github.com/bankist-dev/bankist/internal/summary"
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

func newController(t *testing.T, accounts ...*model.Account) *Controller {
	t.Helper()
	s, err := store.New(accounts)
	require.NoError(t, err)
	return NewController(s)
}

func sender() *model.Account {
	return &model.Account{Owner: "Alice Ames", Movements: movs(500), InterestRate: dec("1"), PIN: 1111}
}

func recipient() *model.Account {
	return &model.Account{Owner: "Bob Burns", Movements: movs(100), InterestRate: dec("1"), PIN: 2222}
}

func TestLogin(t *testing.T) {
	c := newController(t, sender(), recipient())

	acc, err := c.Login("aa", "1111")
	require.NoError(t, err)
	assert.Equal(t, "Alice Ames", acc.Owner)

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Same(t, acc, cur)
}

func TestLogin_Rejections(t *testing.T) {
	c := newController(t, sender())

	_, err := c.Login("zz", "1111")
	assert.ErrorIs(t, err, ErrUnknownAccount)

	_, err = c.Login("aa", "9999")
	assert.ErrorIs(t, err, ErrWrongPIN)

	_, err = c.Login("aa", "not-a-pin")
	assert.ErrorIs(t, err, ErrWrongPIN)

	_, ok := c.Current()
	assert.False(t, ok, "failed login must not start a session")
}

func TestTransfer(t *testing.T) {
	from, to := sender(), recipient()
	c := newController(t, from, to)

	_, err := c.Login("aa", "1111")
	require.NoError(t, err)

	require.NoError(t, c.Transfer("bb", "200"))

	require.Len(t, from.Movements, 2)
	assert.True(t, from.Movements[1].Equal(dec("-200")))
	require.Len(t, to.Movements, 2)
	assert.True(t, to.Movements[1].Equal(dec("200")))

	// Both sides land on 300.
	assert.True(t, summary.Balance(from.Movements).Equal(dec("300")))
	assert.True(t, summary.Balance(to.Movements).Equal(dec("300")))
}

func TestTransfer_Rejections(t *testing.T) {
	from, to := sender(), recipient()
	c := newController(t, from, to)

	assert.ErrorIs(t, c.Transfer("bb", "50"), ErrNoSession)

	_, err := c.Login("aa", "1111")
	require.NoError(t, err)

	assert.ErrorIs(t, c.Transfer("bb", "0"), ErrBadAmount)
	assert.ErrorIs(t, c.Transfer("bb", "-50"), ErrBadAmount)
	assert.ErrorIs(t, c.Transfer("bb", "abc"), ErrBadAmount)
	assert.ErrorIs(t, c.Transfer("zz", "50"), ErrUnknownAccount)
	assert.ErrorIs(t, c.Transfer("aa", "50"), ErrSameAccount)
	assert.ErrorIs(t, c.Transfer("bb", "600"), ErrInsufficientFunds)

	// A sender with balance 100 cannot send 150.
	small := &model.Account{Owner: "Carl Cole", Movements: movs(100), InterestRate: dec("1"), PIN: 3333}
	c2 := newController(t, small, recipient())
	_, err = c2.Login("cc", "3333")
	require.NoError(t, err)
	assert.ErrorIs(t, c2.Transfer("bb", "150"), ErrInsufficientFunds)

	// Nothing moved on either side anywhere.
	assert.Len(t, from.Movements, 1)
	assert.Len(t, to.Movements, 1)
	assert.Len(t, small.Movements, 1)
}

func TestRequestLoan_Approved(t *testing.T) {
	a := &model.Account{Owner: "Dana Dorn", Movements: movs(200, 450), InterestRate: dec("1"), PIN: 1234}
	c := newController(t, a)
	_, err := c.Login("dd", "1234")
	require.NoError(t, err)

	// 450 >= 400/10, so the loan is granted.
	require.NoError(t, c.RequestLoan("400"))
	require.Len(t, a.Movements, 3)
	assert.True(t, a.Movements[2].Equal(dec("400")))
}

func TestRequestLoan_Rejections(t *testing.T) {
	a := &model.Account{Owner: "Dana Dorn", Movements: movs(5, 9), InterestRate: dec("1"), PIN: 1234}
	c := newController(t, a)

	assert.ErrorIs(t, c.RequestLoan("100"), ErrNoSession)

	_, err := c.Login("dd", "1234")
	require.NoError(t, err)

	// Needs a movement of at least 100; the largest is 9.
	assert.ErrorIs(t, c.RequestLoan("1000"), ErrLoanDenied)
	assert.ErrorIs(t, c.RequestLoan("0"), ErrBadAmount)
	assert.ErrorIs(t, c.RequestLoan(""), ErrBadAmount)

	assert.Len(t, a.Movements, 2)
}

func TestCloseAccount(t *testing.T) {
	from, to := sender(), recipient()
	c := newController(t, from, to)
	_, err := c.Login("aa", "1111")
	require.NoError(t, err)

	require.NoError(t, c.CloseAccount("aa", "1111"))

	assert.Equal(t, 1, c.Store().Len())
	assert.False(t, c.Store().Exists("aa"))
	_, ok := c.Current()
	assert.False(t, ok, "closing ends the session")
}

func TestCloseAccount_Rejections(t *testing.T) {
	from, to := sender(), recipient()
	c := newController(t, from, to)

	assert.ErrorIs(t, c.CloseAccount("aa", "1111"), ErrNoSession)

	_, err := c.Login("aa", "1111")
	require.NoError(t, err)

	assert.ErrorIs(t, c.CloseAccount("bb", "1111"), ErrWrongUsername)
	assert.ErrorIs(t, c.CloseAccount("aa", "2222"), ErrWrongPIN)
	assert.ErrorIs(t, c.CloseAccount("aa", "oops"), ErrWrongPIN)

	assert.Equal(t, 2, c.Store().Len())
	_, ok := c.Current()
	assert.True(t, ok, "failed close keeps the session")
}

func TestToggleSort_NeverMutatesStoredOrder(t *testing.T) {
	a := &model.Account{Owner: "Eve East", Movements: movs(200, -200, 340, -300), InterestRate: dec("1"), PIN: 1234}
	c := newController(t, a)
	_, err := c.Login("ee", "1234")
	require.NoError(t, err)

	original := make([]decimal.Decimal, len(a.Movements))
	copy(original, a.Movements)

	assert.True(t, c.ToggleSort())
	sorted, err := c.Movements()
	require.NoError(t, err)
	assert.True(t, sorted[0].Equal(dec("-300")))
	assert.True(t, sorted[len(sorted)-1].Equal(dec("340")))

	assert.False(t, c.ToggleSort())
	chrono, err := c.Movements()
	require.NoError(t, err)
	for i := range original {
		assert.True(t, chrono[i].Equal(original[i]))
	}

	// Stored order untouched after any number of toggles.
	for i := 0; i < 5; i++ {
		c.ToggleSort()
		_, err = c.Movements()
		require.NoError(t, err)
	}
	for i := range original {
		assert.True(t, a.Movements[i].Equal(original[i]))
	}
}

func TestBalanceInvariant_AfterOperationSequence(t *testing.T) {
	from, to := sender(), recipient()
	c := newController(t, from, to)
	_, err := c.Login("aa", "1111")
	require.NoError(t, err)

	require.NoError(t, c.Transfer("bb", "120"))
	require.NoError(t, c.RequestLoan("300"))
	require.NoError(t, c.Transfer("bb", "75.50"))

	for _, a := range c.Store().All() {
		s := summary.Compute(a)
		assert.True(t, s.In.Sub(s.Out).Equal(summary.Balance(a.Movements)),
			"in - out must equal balance for %s", a.Username)
	}
}
