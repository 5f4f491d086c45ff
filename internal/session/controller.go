// Package session implements the banking session: one logged-in
// account at a time and the operations a user may perform against it.
package session

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/store"
	"github.com/bankist-dev/bankist/internal/summary"
)

var ten = decimal.NewFromInt(10)

// Controller owns the account store and tracks the active session.
// It is single-threaded by design; all operations run to completion
// before the next intent is processed.
type Controller struct {
	store   *store.Store
	current *model.Account
	sortAsc bool
}

// NewController creates a Controller over a store with no active
// session.
func NewController(s *store.Store) *Controller {
	return &Controller{store: s}
}

// Current returns the logged-in account, if any.
func (c *Controller) Current() (*model.Account, bool) {
	return c.current, c.current != nil
}

// Store returns the underlying account store.
func (c *Controller) Store() *store.Store {
	return c.store
}

// Login starts a session for the account whose username and PIN both
// match. The PIN input is raw text; anything that does not parse to
// the account's numeric PIN is a wrong PIN.
func (c *Controller) Login(username, pin string) (*model.Account, error) {
	acc, ok := c.store.Get(username)
	if !ok {
		return nil, ErrUnknownAccount
	}
	n, err := strconv.Atoi(pin)
	if err != nil || n != acc.PIN {
		return nil, ErrWrongPIN
	}
	c.current = acc
	return acc, nil
}

// Transfer moves amount from the logged-in account to the named
// recipient: one withdrawal appended to the sender, one deposit to the
// recipient. Rejected transfers change neither account.
func (c *Controller) Transfer(toUsername, amount string) error {
	if c.current == nil {
		return ErrNoSession
	}
	amt, err := parseAmount(amount)
	if err != nil {
		return err
	}
	recipient, ok := c.store.Get(toUsername)
	if !ok {
		return ErrUnknownAccount
	}
	if recipient.Username == c.current.Username {
		return ErrSameAccount
	}
	if summary.Balance(c.current.Movements).LessThan(amt) {
		return ErrInsufficientFunds
	}

	c.current.Append(amt.Neg())
	recipient.Append(amt)
	return nil
}

// RequestLoan appends the requested amount as a deposit if the account
// has at least one movement of 10% of the amount or more.
func (c *Controller) RequestLoan(amount string) error {
	if c.current == nil {
		return ErrNoSession
	}
	amt, err := parseAmount(amount)
	if err != nil {
		return err
	}

	threshold := amt.Div(ten)
	qualifies := false
	for _, m := range c.current.Movements {
		if m.GreaterThanOrEqual(threshold) {
			qualifies = true
			break
		}
	}
	if !qualifies {
		return ErrLoanDenied
	}

	c.current.Append(amt)
	return nil
}

// CloseAccount removes the logged-in account from the store after the
// user retypes its username and PIN, then ends the session.
func (c *Controller) CloseAccount(username, pin string) error {
	if c.current == nil {
		return ErrNoSession
	}
	if username != c.current.Username {
		return ErrWrongUsername
	}
	n, err := strconv.Atoi(pin)
	if err != nil || n != c.current.PIN {
		return ErrWrongPIN
	}

	c.store.Remove(c.current.Username)
	c.current = nil
	return nil
}

// ToggleSort flips the display sort order and returns the new state
// (true = ascending by amount).
func (c *Controller) ToggleSort() bool {
	c.sortAsc = !c.sortAsc
	return c.sortAsc
}

// Movements returns a display copy of the current account's movements,
// ascending by amount when sorting is toggled on, in insertion order
// otherwise. The stored sequence is never reordered.
func (c *Controller) Movements() ([]decimal.Decimal, error) {
	if c.current == nil {
		return nil, ErrNoSession
	}
	out := make([]decimal.Decimal, len(c.current.Movements))
	copy(out, c.current.Movements)
	if c.sortAsc {
		sort.Slice(out, func(i, j int) bool { return out[i].LessThan(out[j]) })
	}
	return out, nil
}

// Balance returns the current account's balance.
func (c *Controller) Balance() (decimal.Decimal, error) {
	if c.current == nil {
		return decimal.Zero, ErrNoSession
	}
	return summary.Balance(c.current.Movements), nil
}

// Summary returns the current account's deposit/withdrawal/interest
// totals.
func (c *Controller) Summary() (summary.Summary, error) {
	if c.current == nil {
		return summary.Summary{}, ErrNoSession
	}
	return summary.Compute(c.current), nil
}

// parseAmount parses a raw amount field. Non-numeric input fails the
// same way a non-positive amount does.
func parseAmount(raw string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(raw)
	if err != nil || !amt.IsPositive() {
		return decimal.Zero, ErrBadAmount
	}
	return amt, nil
}
