package session

import "errors"

// Domain errors returned by session operations. Every rejected
// operation leaves all accounts untouched and reports its cause, so
// callers can tell "insufficient funds" apart from "unknown recipient".
var (
	// ErrNoSession means a mutating operation was attempted before a
	// successful login.
	ErrNoSession = errors.New("no active session")

	// ErrUnknownAccount means the named username exists nowhere in the
	// store.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrWrongPIN means the supplied PIN did not match the account
	// (including PINs that fail to parse as a number).
	ErrWrongPIN = errors.New("wrong PIN")

	// ErrWrongUsername means a close request named a username other
	// than the logged-in account's.
	ErrWrongUsername = errors.New("username does not match current account")

	// ErrBadAmount means the amount was non-numeric or not positive.
	ErrBadAmount = errors.New("amount must be a number greater than zero")

	// ErrSameAccount means a transfer named the sender as recipient.
	ErrSameAccount = errors.New("cannot transfer to own account")

	// ErrInsufficientFunds means the sender's balance does not cover
	// the transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLoanDenied means no existing movement reaches 10% of the
	// requested loan amount.
	ErrLoanDenied = errors.New("loan denied: no qualifying deposit")
)
