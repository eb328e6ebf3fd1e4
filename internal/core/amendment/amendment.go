// Copyright (c) 2024-2025. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package amendment tracks which protocol changes are live for a given
// ledger. A Rules value travels in tx.EngineConfig; the nftoken
// transactions do not consult it, so no transaction is refused for a
// disabled amendment.
package amendment

import "crypto/sha256"

// featureID derives a stable 256-bit identifier from an amendment's name,
// the same scheme rippled uses: sha256 of the ASCII name.
func featureID(name string) [32]byte {
	return sha256.Sum256([]byte(name))
}

// Amendments relevant to the NFT subsystem. Unrelated amendments (AMM,
// Clawback, cross-chain bridges, ...) are not modeled here: this module
// never consults them.
var (
	AmendmentNonFungibleTokensV1          = featureID("NonFungibleTokensV1")
	AmendmentNonFungibleTokensV1_1        = featureID("NonFungibleTokensV1_1")
	AmendmentFixNFTokenDirV1              = featureID("fixNFTokenDirV1")
	AmendmentFixNFTokenNegOffer           = featureID("fixNFTokenNegOffer")
	AmendmentFixNonFungibleTokensV1_2     = featureID("fixNonFungibleTokensV1_2")
	AmendmentFixRemoveNFTokenAutoTrustLine = featureID("fixRemoveNFTokenAutoTrustLine")
	AmendmentDynamicNFT                   = featureID("DynamicNFT")
)

// byName maps an amendment's rippled name to its feature id, letting
// configuration name amendments by string rather than by precomputed hash.
var byName = map[string][32]byte{
	"NonFungibleTokensV1":           AmendmentNonFungibleTokensV1,
	"NonFungibleTokensV1_1":         AmendmentNonFungibleTokensV1_1,
	"fixNFTokenDirV1":               AmendmentFixNFTokenDirV1,
	"fixNFTokenNegOffer":            AmendmentFixNFTokenNegOffer,
	"fixNonFungibleTokensV1_2":      AmendmentFixNonFungibleTokensV1_2,
	"fixRemoveNFTokenAutoTrustLine": AmendmentFixRemoveNFTokenAutoTrustLine,
	"DynamicNFT":                    AmendmentDynamicNFT,
}

// Resolve looks up an amendment's feature id by its rippled name.
func Resolve(name string) ([32]byte, bool) {
	id, ok := byName[name]
	return id, ok
}

// Rules is a read-only view of which amendments are enabled for the ledger
// a transaction is being applied against.
type Rules struct {
	enabled map[[32]byte]bool
}

// NewRules builds a Rules value from a set of enabled amendment IDs.
func NewRules(enabledIDs ...[32]byte) *Rules {
	r := &Rules{enabled: make(map[[32]byte]bool, len(enabledIDs))}
	for _, id := range enabledIDs {
		r.enabled[id] = true
	}
	return r
}

// Enabled reports whether the named amendment is live.
func (r *Rules) Enabled(id [32]byte) bool {
	if r == nil {
		return false
	}
	return r.enabled[id]
}

// EmptyRules enables nothing; useful for exercising pre-amendment behavior.
func EmptyRules() *Rules {
	return NewRules()
}

// AllSupportedRules enables every amendment this module knows about. The
// default for tests and for a freshly bootstrapped ledger.
func AllSupportedRules() *Rules {
	return NewRules(
		AmendmentNonFungibleTokensV1,
		AmendmentNonFungibleTokensV1_1,
		AmendmentFixNFTokenDirV1,
		AmendmentFixNFTokenNegOffer,
		AmendmentFixNonFungibleTokensV1_2,
		AmendmentFixRemoveNFTokenAutoTrustLine,
		AmendmentDynamicNFT,
	)
}
