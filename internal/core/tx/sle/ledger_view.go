// Package sle defines the ledger objects the NFT subsystem reads and
// writes, and the narrow view of ledger state transactions are applied
// against.
package sle

import "github.com/solmsted/rippled/internal/core/ledger/keylet"

// LedgerView is the single mutable resource a transaction may touch while
// it applies. There are no suspension points between Read and Insert/
// Update/Erase calls: apply runs to completion or not at all, with no
// interleaving from any other transaction.
type LedgerView interface {
	Read(k keylet.Keylet) ([]byte, error)
	Exists(k keylet.Keylet) (bool, error)
	Insert(k keylet.Keylet, data []byte) error
	Update(k keylet.Keylet, data []byte) error
	Erase(k keylet.Keylet) error

	// ReadPage and friends address NFT pages directly by their raw,
	// orderable key rather than through a Keylet, since page keys must
	// stay comparable for the successor-search locate algorithm.
	ReadPage(pageKey [32]byte) ([]byte, error)
	ExistsPage(pageKey [32]byte) (bool, error)
	InsertPage(pageKey [32]byte, data []byte) error
	UpdatePage(pageKey [32]byte, data []byte) error
	ErasePage(pageKey [32]byte) error

	// AccountHolds, SendAmount and AdjustOwnerCount are the payment and
	// accounting subsystem's contribution to this view; the NFT
	// subsystem never mutates a balance or owner count directly.
	AccountHolds(account [20]byte, asset Asset) (Amount, error)
	SendAmount(src, dst [20]byte, amt Amount) error
	AdjustOwnerCount(account [20]byte, delta int32) error
	OwnerCount(account [20]byte) (uint32, error)

	// ReadAccount and WriteAccount give the NFT subsystem the narrow
	// account-root fields it owns outright (mintedCount, burnedCount,
	// authorizedMinter) without reaching into trust lines or signing
	// keys, which stay the payment subsystem's concern.
	ReadAccount(account [20]byte) (*AccountRoot, bool, error)
	WriteAccount(a *AccountRoot) error
}
