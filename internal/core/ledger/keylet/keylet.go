// Copyright (c) 2024-2025. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package keylet derives the addresses ("keylets") under which ledger
// objects live. Account roots and offer objects are addressed by a hash
// of their identifying fields, since they are only ever looked up by
// exact key. NFT pages are the exception: their key must sort, so it is
// the raw owner+discriminator value rather than a hash of it (see
// PageKeyFor).
package keylet

import (
	"crypto/sha256"
	"encoding/binary"
)

// EntryType distinguishes the ledger object a Keylet addresses.
type EntryType int

const (
	TypeAccountRoot EntryType = iota
	TypeNFTokenPage
	TypeNFTokenOffer
	TypeDirectoryNode
)

const (
	spaceAccount    uint16 = 'a'
	spaceNFTokenOff uint16 = 'q'
	spaceOwnerDir   uint16 = 'O'
	spaceNFTBuyDir  uint16 = 'Y'
	spaceNFTSellDir uint16 = 'Z'
)

// Keylet is an addressable location in the ledger state.
type Keylet struct {
	Type EntryType
	Key  [32]byte
}

func indexHash(space uint16, data ...[]byte) [32]byte {
	h := sha256.New()
	var spaceBytes [2]byte
	binary.BigEndian.PutUint16(spaceBytes[:], space)
	h.Write(spaceBytes[:])
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Account returns the keylet of an account root.
func Account(accountID [20]byte) Keylet {
	return Keylet{Type: TypeAccountRoot, Key: indexHash(spaceAccount, accountID[:])}
}

// NFTokenOffer returns the keylet of an NFT offer created at the given
// owner sequence.
func NFTokenOffer(owner [20]byte, sequence uint32) Keylet {
	var seqBytes [4]byte
	binary.BigEndian.PutUint32(seqBytes[:], sequence)
	return Keylet{Type: TypeNFTokenOffer, Key: indexHash(spaceNFTokenOff, owner[:], seqBytes[:])}
}

// OwnerDirRoot returns the root directory key an account's outgoing
// offers are linked under.
func OwnerDirRoot(owner [20]byte) [32]byte {
	return indexHash(spaceOwnerDir, owner[:])
}

// NFTBuyDirRoot returns the root directory key an NFT's buy offers are
// linked under.
func NFTBuyDirRoot(nftID [32]byte) [32]byte {
	return indexHash(spaceNFTBuyDir, nftID[:])
}

// NFTSellDirRoot returns the root directory key an NFT's sell offers are
// linked under.
func NFTSellDirRoot(nftID [32]byte) [32]byte {
	return indexHash(spaceNFTSellDir, nftID[:])
}

// PageMin returns the lowest key a page belonging to owner may have: the
// owner's account bits followed by 96 zero bits.
func PageMin(owner [20]byte) [32]byte {
	var k [32]byte
	copy(k[:20], owner[:])
	return k
}

// PageMax returns the highest key a page belonging to owner may have:
// the owner's account bits followed by 96 set bits.
func PageMax(owner [20]byte) [32]byte {
	k := PageMin(owner)
	for i := 20; i < 32; i++ {
		k[i] = 0xFF
	}
	return k
}

// PageKeyFor returns the literal (unhashed) key formed from the owner's
// bits followed by the id's low 96 bits. The page store uses it as the
// search key when locating the page for an id, and as the key of the new
// lower page a split creates (taken from that page's last token). An
// owner's first page is keyed at PageMax instead.
func PageKeyFor(owner [20]byte, nftID [32]byte) [32]byte {
	k := PageMin(owner)
	copy(k[20:], nftID[20:])
	return k
}
