package nftoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDRoundTrip(t *testing.T) {
	issuer := [20]byte{1, 2, 3, 4, 5}
	id := BuildID(FlagBurnable|FlagTransferable, 2500, issuer, 7, 42)

	assert.Equal(t, FlagBurnable|FlagTransferable, id.Flags())
	assert.Equal(t, uint16(2500), id.TransferFee())
	assert.Equal(t, issuer, id.Issuer())
	assert.Equal(t, uint32(42), id.Sequence())
	assert.Equal(t, uint32(7), id.Taxon())
	assert.True(t, id.IsBurnable())
	assert.True(t, id.IsTransferable())
	assert.False(t, id.IsOnlyNative())
}

func TestTaxonCipherDiffersFromPlainTaxon(t *testing.T) {
	issuer := [20]byte{9}
	id := BuildID(0, 0, issuer, 100, 1)
	require.NotEqual(t, uint32(100), lcg(1))
	assert.Equal(t, uint32(100), id.Taxon())
}

func TestIDCmpIsLexicographic(t *testing.T) {
	issuer := [20]byte{1}
	low := BuildID(0, 0, issuer, 0, 1)
	high := BuildID(0, 0, issuer, 0, 2)
	assert.Equal(t, -1, low.Cmp(high))
	assert.Equal(t, 1, high.Cmp(low))
	assert.Equal(t, 0, low.Cmp(low))
}

func TestEquivalenceKeyIgnoresLow96Bits(t *testing.T) {
	issuer := [20]byte{5, 5, 5}
	a := BuildID(FlagTransferable, 10, issuer, 1, 1)
	b := BuildID(FlagTransferable, 10, issuer, 999, 999)
	assert.Equal(t, a.EquivalenceKey(), b.EquivalenceKey())

	c := BuildID(FlagTransferable, 11, issuer, 1, 1)
	assert.NotEqual(t, a.EquivalenceKey(), c.EquivalenceKey())
}

func TestValidMintFlags(t *testing.T) {
	assert.True(t, ValidMintFlags(FlagBurnable|FlagOnlyNative|FlagTransferable))
	assert.True(t, ValidMintFlags(FlagTrustLine))
	assert.False(t, ValidMintFlags(0x0010))
}
