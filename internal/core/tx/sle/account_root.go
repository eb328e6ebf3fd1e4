package sle

// AccountRoot is the subset of an account's ledger object the NFT
// subsystem touches directly. Signing keys, trust-line bookkeeping and
// the rest of the account object live in the payment subsystem and are
// reached only through LedgerView.AccountHolds/SendAmount/
// AdjustOwnerCount/OwnerCount.
type AccountRoot struct {
	AccountID  [20]byte
	Sequence   uint32
	OwnerCount uint32
	Balance    Amount
	MintedNFTokens uint32
	BurnedNFTokens uint32

	AuthorizedMinter    [20]byte
	HasAuthorizedMinter bool
}

// NextNFTokenSequence returns the sequence number the next NFTokenMint by
// this account would consume, and false if minting must be refused because
// the sequence space is exhausted.
func (a *AccountRoot) NextNFTokenSequence() (uint32, bool) {
	if a.MintedNFTokens == ^uint32(0) {
		return 0, false
	}
	return a.MintedNFTokens, true
}
