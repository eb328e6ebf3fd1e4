package memview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

func TestStoreObjectRoundTrip(t *testing.T) {
	store := New()
	k := keylet.Account([20]byte{9})

	exists, err := store.Exists(k)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Insert(k, []byte("a")))
	data, err := store.Read(k)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	require.NoError(t, store.Erase(k))
	exists, err = store.Exists(k)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreAccountAndBalances(t *testing.T) {
	store := New()
	account := [20]byte{1}
	store.PutAccount(sle.AccountRoot{AccountID: account, MintedNFTokens: 2})

	a, exists, err := store.ReadAccount(account)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, uint32(2), a.MintedNFTokens)

	store.CreditNative(account, 500)
	held, err := store.AccountHolds(account, sle.NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(500), held.Drops)

	other := [20]byte{2}
	require.NoError(t, store.SendAmount(account, other, sle.NewNativeAmount(200)))
	held, err = store.AccountHolds(other, sle.NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(200), held.Drops)

	err = store.SendAmount(account, other, sle.NewNativeAmount(10_000))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestStoreOwnerCount(t *testing.T) {
	store := New()
	account := [20]byte{3}

	require.NoError(t, store.AdjustOwnerCount(account, 2))
	count, err := store.OwnerCount(account)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)

	assert.Error(t, store.AdjustOwnerCount(account, -5))
}
