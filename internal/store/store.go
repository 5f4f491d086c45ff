// Package store holds the in-memory account collection for one process
// session. Accounts are seeded once at construction and only ever
// removed, never created, at runtime.
package store

import (
	"fmt"

	"github.com/bankist-dev/bankist/internal/handle"
	"github.com/bankist-dev/bankist/internal/model"
)

// Store provides ordered, username-indexed access to accounts.
type Store struct {
	accounts   []*model.Account
	byUsername map[string]*model.Account
}

// New builds a Store from seed accounts. Usernames are derived from the
// owner names here, exactly once; a duplicate derived username is an
// error rather than a silent shadowing in the index.
func New(accounts []*model.Account) (*Store, error) {
	byUsername := make(map[string]*model.Account, len(accounts))
	for _, a := range accounts {
		a.Username = handle.Derive(a.Owner)
		if _, ok := byUsername[a.Username]; ok {
			return nil, fmt.Errorf("duplicate username %q derived from %q", a.Username, a.Owner)
		}
		byUsername[a.Username] = a
	}
	return &Store{accounts: accounts, byUsername: byUsername}, nil
}

// All returns all accounts in seed order.
func (s *Store) All() []*model.Account {
	return s.accounts
}

// Get returns an account by username.
func (s *Store) Get(username string) (*model.Account, bool) {
	a, ok := s.byUsername[username]
	return a, ok
}

// Exists reports whether a username exists.
func (s *Store) Exists(username string) bool {
	_, ok := s.byUsername[username]
	return ok
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

// Remove deletes the account with the given username, preserving the
// order of the remaining accounts. Reports whether an account was
// removed.
func (s *Store) Remove(username string) bool {
	a, ok := s.byUsername[username]
	if !ok {
		return false
	}
	delete(s.byUsername, username)
	for i, acc := range s.accounts {
		if acc == a {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	return true
}
