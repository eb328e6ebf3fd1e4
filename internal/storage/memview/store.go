// Package memview is an in-memory sle.LedgerView, used by tests that
// want to drive the NFT subsystem without a pebble database on disk.
package memview

import (
	"errors"
	"sync"

	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

var ErrInsufficientFunds = errors.New("memview: insufficient balance")

type Store struct {
	mu sync.Mutex

	objects  map[[32]byte][]byte
	pages    map[[32]byte][]byte
	accounts map[[20]byte]sle.AccountRoot
	balances map[[20]byte]int64
	owners   map[[20]byte]uint32
}

func New() *Store {
	return &Store{
		objects:  make(map[[32]byte][]byte),
		pages:    make(map[[32]byte][]byte),
		accounts: make(map[[20]byte]sle.AccountRoot),
		balances: make(map[[20]byte]int64),
		owners:   make(map[[20]byte]uint32),
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (s *Store) Read(k keylet.Keylet) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.objects[k.Key]), nil
}

func (s *Store) Exists(k keylet.Keylet) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[k.Key]
	return ok, nil
}

func (s *Store) Insert(k keylet.Keylet, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[k.Key] = clone(data)
	return nil
}

func (s *Store) Update(k keylet.Keylet, data []byte) error { return s.Insert(k, data) }

func (s *Store) Erase(k keylet.Keylet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, k.Key)
	return nil
}

func (s *Store) ReadPage(key [32]byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.pages[key]), nil
}

func (s *Store) ExistsPage(key [32]byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pages[key]
	return ok, nil
}

func (s *Store) InsertPage(key [32]byte, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[key] = clone(data)
	return nil
}

func (s *Store) UpdatePage(key [32]byte, data []byte) error { return s.InsertPage(key, data) }

func (s *Store) ErasePage(key [32]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, key)
	return nil
}

func (s *Store) ReadAccount(id [20]byte) (*sle.AccountRoot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, false, nil
	}
	cp := a
	return &cp, true, nil
}

func (s *Store) WriteAccount(a *sle.AccountRoot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.AccountID] = *a
	return nil
}

func (s *Store) AccountHolds(account [20]byte, asset sle.Asset) (sle.Amount, error) {
	if !asset.Native {
		return sle.Amount{}, errors.New("memview: issued-asset balances are unsupported")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return sle.NewNativeAmount(s.balances[account]), nil
}

func (s *Store) SendAmount(src, dst [20]byte, amt sle.Amount) error {
	if !amt.Native {
		return errors.New("memview: issued-asset transfers are unsupported")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[src] < amt.Drops {
		return ErrInsufficientFunds
	}
	s.balances[src] -= amt.Drops
	s.balances[dst] += amt.Drops
	return nil
}

func (s *Store) AdjustOwnerCount(account [20]byte, delta int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := int64(s.owners[account]) + int64(delta)
	if cur < 0 {
		return errors.New("memview: owner count would go negative")
	}
	s.owners[account] = uint32(cur)
	return nil
}

func (s *Store) OwnerCount(account [20]byte) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owners[account], nil
}

func (s *Store) CreditNative(account [20]byte, drops int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[account] += drops
}

func (s *Store) PutAccount(a sle.AccountRoot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.AccountID] = a
}
