// Package nftoken implements the NFT subsystem: identifier construction,
// the per-owner paginated directory, offer lifecycle, and accept/broker
// settlement.
package nftoken

import "encoding/binary"

// Flag bits packed into an NFT identifier's high 16 bits.
const (
	FlagBurnable     uint16 = 0x0001
	FlagOnlyNative   uint16 = 0x0002
	FlagTrustLine    uint16 = 0x0004
	FlagTransferable uint16 = 0x0008

	validMintFlagMask uint16 = FlagBurnable | FlagOnlyNative | FlagTrustLine | FlagTransferable

	MaxTransferFee    uint16 = 50000
	TransferFeeDivisor int64  = 100000
)

// lcgMultiplier and lcgIncrement are the fixed linear-congruential
// constants used to mix a mint sequence into its taxon.
const (
	lcgMultiplier uint32 = 384160001
	lcgIncrement  uint32 = 2459
)

func lcg(sequence uint32) uint32 {
	return sequence*lcgMultiplier + lcgIncrement
}

func cipherTaxon(taxon, sequence uint32) uint32 {
	return taxon ^ lcg(sequence)
}

// ID is a 256-bit NFT identifier: flags(16) | transferFee(16) |
// issuer(160) | ciphered taxon(32) | sequence(32), big-endian.
type ID [32]byte

// BuildID packs a token's fields into its identifier, ciphering the
// taxon with the sequence before packing.
func BuildID(flags, transferFee uint16, issuer [20]byte, taxon, sequence uint32) ID {
	var id ID
	binary.BigEndian.PutUint16(id[0:2], flags)
	binary.BigEndian.PutUint16(id[2:4], transferFee)
	copy(id[4:24], issuer[:])
	binary.BigEndian.PutUint32(id[24:28], cipherTaxon(taxon, sequence))
	binary.BigEndian.PutUint32(id[28:32], sequence)
	return id
}

func (id ID) Flags() uint16       { return binary.BigEndian.Uint16(id[0:2]) }
func (id ID) TransferFee() uint16 { return binary.BigEndian.Uint16(id[2:4]) }
func (id ID) Sequence() uint32    { return binary.BigEndian.Uint32(id[28:32]) }

func (id ID) Issuer() [20]byte {
	var issuer [20]byte
	copy(issuer[:], id[4:24])
	return issuer
}

// Taxon reverses the cipher using the id's own sequence field, recovering
// the issuer-supplied taxon.
func (id ID) Taxon() uint32 {
	cipheredTaxon := binary.BigEndian.Uint32(id[24:28])
	return cipheredTaxon ^ lcg(id.Sequence())
}

func (id ID) IsBurnable() bool     { return id.Flags()&FlagBurnable != 0 }
func (id ID) IsOnlyNative() bool   { return id.Flags()&FlagOnlyNative != 0 }
func (id ID) IsTransferable() bool { return id.Flags()&FlagTransferable != 0 }

// Cmp lexicographically compares two ids as unsigned 256-bit integers.
func (id ID) Cmp(other ID) int {
	for i := 0; i < 32; i++ {
		if id[i] != other[i] {
			if id[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// pageMask clears the low 96 bits of an id, leaving flags + fee +
// issuer's high 128 bits as the equivalence-class key.
var pageMask = func() [32]byte {
	var m [32]byte
	for i := 0; i < 20; i++ {
		m[i] = 0xFF
	}
	return m
}()

// EquivalenceKey applies pageMask to id, producing the value that tokens
// sharing a page must agree on.
func (id ID) EquivalenceKey() [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = id[i] & pageMask[i]
	}
	return out
}

func ValidMintFlags(flags uint16) bool {
	return flags&^validMintFlagMask == 0
}
