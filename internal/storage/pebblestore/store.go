// Package pebblestore is the persistent backing for sle.LedgerView: a
// pebble key-value database fronted by a small read-through cache, the
// same shape the ledger manager's own cache takes for recently used
// ledgers.
package pebblestore

import (
	"bytes"
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ugorji/go/codec"

	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

var ErrDBClosed = errors.New("pebblestore: database is closed")

var codecHandle = new(codec.CborHandle)

const (
	prefixKeylet  byte = 'K'
	prefixPage    byte = 'P'
	prefixAccount byte = 'A'
)

// Store implements sle.LedgerView against a pebble database. It also
// stands in for the payment subsystem's AccountHolds/SendAmount/
// AdjustOwnerCount operations with a minimal in-memory native-asset
// ledger, since that subsystem's real implementation is outside this
// module's scope and this view needs something to drive against.
type Store struct {
	db    *pebble.DB
	cache *lru.Cache[string, []byte]

	mu       sync.Mutex
	balances map[[20]byte]int64
	owners   map[[20]byte]uint32
}

// Config controls the read-through cache size; everything else about
// the pebble database is the caller's responsibility to open.
type Config struct {
	CacheSize int
}

// Open opens (or creates) a pebble database at path and wraps it in a
// Store. The caller is responsible for calling Close when done.
func Open(path string, cfg Config) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return New(db, cfg)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func New(db *pebble.DB, cfg Config) (*Store, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 4096
	}
	cache, err := lru.New[string, []byte](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:       db,
		cache:    cache,
		balances: make(map[[20]byte]int64),
		owners:   make(map[[20]byte]uint32),
	}, nil
}

func (s *Store) get(key []byte) ([]byte, error) {
	if s.db == nil {
		return nil, ErrDBClosed
	}
	if v, ok := s.cache.Get(string(key)); ok {
		return v, nil
	}
	val, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	defer closer.Close()
	out := make([]byte, len(val))
	copy(out, val)
	s.cache.Add(string(key), out)
	return out, nil
}

func (s *Store) put(key, value []byte) error {
	if s.db == nil {
		return ErrDBClosed
	}
	if err := s.db.Set(key, value, pebble.Sync); err != nil {
		return err
	}
	s.cache.Add(string(key), append([]byte{}, value...))
	return nil
}

func (s *Store) del(key []byte) error {
	if s.db == nil {
		return ErrDBClosed
	}
	if err := s.db.Delete(key, pebble.Sync); err != nil {
		return err
	}
	s.cache.Remove(string(key))
	return nil
}

func keyletStorageKey(k keylet.Keylet) []byte {
	return append([]byte{prefixKeylet}, k.Key[:]...)
}

func pageStorageKey(key [32]byte) []byte {
	return append([]byte{prefixPage}, key[:]...)
}

func accountStorageKey(id [20]byte) []byte {
	return append([]byte{prefixAccount}, id[:]...)
}

func (s *Store) Read(k keylet.Keylet) ([]byte, error) { return s.get(keyletStorageKey(k)) }

func (s *Store) Exists(k keylet.Keylet) (bool, error) {
	v, err := s.get(keyletStorageKey(k))
	return v != nil, err
}

func (s *Store) Insert(k keylet.Keylet, data []byte) error { return s.put(keyletStorageKey(k), data) }
func (s *Store) Update(k keylet.Keylet, data []byte) error { return s.put(keyletStorageKey(k), data) }
func (s *Store) Erase(k keylet.Keylet) error               { return s.del(keyletStorageKey(k)) }

func (s *Store) ReadPage(key [32]byte) ([]byte, error) { return s.get(pageStorageKey(key)) }

func (s *Store) ExistsPage(key [32]byte) (bool, error) {
	v, err := s.get(pageStorageKey(key))
	return v != nil, err
}

func (s *Store) InsertPage(key [32]byte, data []byte) error { return s.put(pageStorageKey(key), data) }
func (s *Store) UpdatePage(key [32]byte, data []byte) error { return s.put(pageStorageKey(key), data) }
func (s *Store) ErasePage(key [32]byte) error               { return s.del(pageStorageKey(key)) }

func (s *Store) ReadAccount(id [20]byte) (*sle.AccountRoot, bool, error) {
	data, err := s.get(accountStorageKey(id))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	var a sle.AccountRoot
	if err := codec.NewDecoderBytes(data, codecHandle).Decode(&a); err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

func (s *Store) WriteAccount(a *sle.AccountRoot) error {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecHandle).Encode(a); err != nil {
		return err
	}
	return s.put(accountStorageKey(a.AccountID), buf.Bytes())
}

func (s *Store) AccountHolds(account [20]byte, asset sle.Asset) (sle.Amount, error) {
	if !asset.Native {
		return sle.Amount{}, errors.New("pebblestore: issued-asset balances are the payment subsystem's concern")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return sle.NewNativeAmount(s.balances[account]), nil
}

func (s *Store) SendAmount(src, dst [20]byte, amt sle.Amount) error {
	if !amt.Native {
		return errors.New("pebblestore: issued-asset transfers are the payment subsystem's concern")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[src] < amt.Drops {
		return errors.New("pebblestore: insufficient balance")
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
		return errors.New("pebblestore: owner count would go negative")
	}
	s.owners[account] = uint32(cur)
	return nil
}

func (s *Store) OwnerCount(account [20]byte) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owners[account], nil
}

// CreditNative is a test and bootstrap helper for funding an account's
// in-memory native balance; it has no ledger-object counterpart.
func (s *Store) CreditNative(account [20]byte, drops int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[account] += drops
}
