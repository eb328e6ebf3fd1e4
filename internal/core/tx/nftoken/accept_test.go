package nftoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
	"github.com/solmsted/rippled/internal/storage/memview"
)

func TestAcceptDirectBuyOfferTransfersNFTAndFunds(t *testing.T) {
	store := memview.New()
	seller := [20]byte{1}
	buyer := [20]byte{2}
	seedAccount(store, seller)
	seedAccount(store, buyer)
	ctx := newTestContext(store)
	store.CreditNative(buyer, 1_000_000)

	id := mintOne(t, ctx, seller, FlagTransferable)
	sellerOwner := seller
	offerKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: buyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(1_000_000),
		Side:      sle.OfferSideBuy,
		Owner:     &sellerOwner,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	result = Accept(ctx, AcceptParams{Submitter: seller, BuyOfferKey: &offerKey, CloseTime: 0})
	require.Equal(t, tx.TesSUCCESS, result)

	held, err := store.AccountHolds(buyer, sle.NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(0), held.Drops)
	held, err = store.AccountHolds(seller, sle.NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), held.Drops)

	pageStore := ViewPageStore{View: store}
	_, found, err := FindToken(pageStore, seller, id)
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = FindToken(pageStore, buyer, id)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAcceptDirectSellOfferTransfersNFTAndFunds(t *testing.T) {
	store := memview.New()
	seller := [20]byte{3}
	buyer := [20]byte{4}
	seedAccount(store, seller)
	seedAccount(store, buyer)
	ctx := newTestContext(store)
	store.CreditNative(buyer, 500_000)

	id := mintOne(t, ctx, seller, FlagTransferable)
	offerKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: seller,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(500_000),
		Side:      sle.OfferSideSell,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	result = Accept(ctx, AcceptParams{Submitter: buyer, SellOfferKey: &offerKey, CloseTime: 0})
	require.Equal(t, tx.TesSUCCESS, result)

	held, err := store.AccountHolds(seller, sle.NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), held.Drops)
}

func TestAcceptRejectsOwnOffer(t *testing.T) {
	store := memview.New()
	seller := [20]byte{5}
	seedAccount(store, seller)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, seller, FlagTransferable)

	offerKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: seller,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(1),
		Side:      sle.OfferSideSell,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	result = Accept(ctx, AcceptParams{Submitter: seller, SellOfferKey: &offerKey, CloseTime: 0})
	assert.Equal(t, tx.TecCANT_ACCEPT_OWN_NFTOKEN_OFFER, result)
}

// TestAcceptBrokeredSplitsRoyaltyBrokerFeeAndSellerPayout exercises a
// 50% transfer fee against a brokered sale: of the 1,000,000 drops the
// buy offer names, the broker keeps its 750,000 drop fee first, then
// the issuer's 50% royalty is taken from what remains (250,000), and
// the seller keeps the rest.
func TestAcceptBrokeredSplitsRoyaltyBrokerFeeAndSellerPayout(t *testing.T) {
	store := memview.New()
	issuer := [20]byte{6}
	seller := [20]byte{7}
	buyer := [20]byte{8}
	broker := [20]byte{9}
	seedAccount(store, issuer)
	seedAccount(store, seller)
	seedAccount(store, buyer)
	seedAccount(store, broker)
	ctx := newTestContext(store)
	store.CreditNative(buyer, 1_000_000)

	fee := uint16(50000)
	id, r := Mint(ctx, issuer, 0, FlagTransferable, nil, &fee, nil)
	require.Equal(t, tx.TesSUCCESS, r)

	pageStore := ViewPageStore{View: store}
	require.NoError(t, Remove(pageStore, issuer, id, func() error { return nil }, func() error { return nil }))
	require.NoError(t, Insert(pageStore, seller, sle.NFTokenData{NFTokenID: id}, func() error { return store.AdjustOwnerCount(seller, 1) }))

	sellOwner := seller
	sellKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: seller,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(125_000),
		Side:      sle.OfferSideSell,
	})
	require.Equal(t, tx.TesSUCCESS, result)
	buyKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: buyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(1_000_000),
		Side:      sle.OfferSideBuy,
		Owner:     &sellOwner,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	brokerFee := sle.NewNativeAmount(750_000)
	result = Accept(ctx, AcceptParams{
		Submitter:    broker,
		BuyOfferKey:  &buyKey,
		SellOfferKey: &sellKey,
		BrokerFee:    &brokerFee,
		CloseTime:    0,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	assertBalance(t, store, broker, 750_000)
	assertBalance(t, store, issuer, 125_000)
	assertBalance(t, store, seller, 125_000)
	assertBalance(t, store, buyer, 0)
}

// TestAcceptBrokeredRejectsFeeThatStarvesSeller mirrors the boundary
// where the broker's cut leaves less than the seller's named minimum.
func TestAcceptBrokeredRejectsFeeThatStarvesSeller(t *testing.T) {
	store := memview.New()
	seller := [20]byte{10}
	buyer := [20]byte{11}
	broker := [20]byte{12}
	seedAccount(store, seller)
	seedAccount(store, buyer)
	seedAccount(store, broker)
	ctx := newTestContext(store)
	store.CreditNative(buyer, 1000)

	id := mintOne(t, ctx, seller, FlagTransferable)
	sellOwner := seller
	sellKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: seller,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(900),
		Side:      sle.OfferSideSell,
	})
	require.Equal(t, tx.TesSUCCESS, result)
	buyKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: buyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(1000),
		Side:      sle.OfferSideBuy,
		Owner:     &sellOwner,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	tooMuch := sle.NewNativeAmount(101)
	result = Accept(ctx, AcceptParams{
		Submitter: broker, BuyOfferKey: &buyKey, SellOfferKey: &sellKey, BrokerFee: &tooMuch, CloseTime: 0,
	})
	assert.Equal(t, tx.TecINSUFFICIENT_PAYMENT, result)
}

// TestAcceptBuyOfferFailsOnceNFTHasChangedHands mints one NFT to an
// owner against whom two separate buy offers are opened, accepts the
// first (which moves the NFT to that buyer), then tries to accept the
// second: the original owner no longer holds the token, so the second
// accept must be rejected even though the offer itself is still live.
func TestAcceptBuyOfferFailsOnceNFTHasChangedHands(t *testing.T) {
	store := memview.New()
	owner := [20]byte{20}
	firstBuyer := [20]byte{21}
	secondBuyer := [20]byte{22}
	seedAccount(store, owner)
	seedAccount(store, firstBuyer)
	seedAccount(store, secondBuyer)
	ctx := newTestContext(store)
	store.CreditNative(firstBuyer, 1_000)
	store.CreditNative(secondBuyer, 2_000)

	id := mintOne(t, ctx, owner, FlagTransferable)

	ownerRef := owner
	firstOfferKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: firstBuyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(1_000),
		Side:      sle.OfferSideBuy,
		Owner:     &ownerRef,
	})
	require.Equal(t, tx.TesSUCCESS, result)
	secondOfferKey, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: secondBuyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(2_000),
		Side:      sle.OfferSideBuy,
		Owner:     &ownerRef,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	result = Accept(ctx, AcceptParams{Submitter: owner, BuyOfferKey: &firstOfferKey, CloseTime: 0})
	require.Equal(t, tx.TesSUCCESS, result)

	pageStore := ViewPageStore{View: store}
	_, found, err := FindToken(pageStore, owner, id)
	require.NoError(t, err)
	require.False(t, found, "owner no longer holds the NFT after the first accept")
	_, found, err = FindToken(pageStore, firstBuyer, id)
	require.NoError(t, err)
	require.True(t, found)

	result = Accept(ctx, AcceptParams{Submitter: owner, BuyOfferKey: &secondOfferKey, CloseTime: 0})
	assert.Equal(t, tx.TecNO_PERMISSION, result, "the second offer still names owner, who no longer holds the NFT")
}

func assertBalance(t *testing.T, store *memview.Store, account [20]byte, drops int64) {
	t.Helper()
	held, err := store.AccountHolds(account, sle.NativeAsset())
	require.NoError(t, err)
	assert.Equal(t, drops, held.Drops)
}
