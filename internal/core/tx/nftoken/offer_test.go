package nftoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
	"github.com/solmsted/rippled/internal/storage/memview"
)

func mintOne(t *testing.T, ctx *tx.ApplyContext, issuer [20]byte, flags uint16) ID {
	id, r := Mint(ctx, issuer, 0, flags, nil, nil, nil)
	require.Equal(t, tx.TesSUCCESS, r)
	return id
}

func TestCreateSellOfferRequiresHolding(t *testing.T) {
	store := memview.New()
	seller := [20]byte{1}
	seedAccount(store, seller)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, seller, FlagTransferable)

	_, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: seller,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(500),
		Side:      sle.OfferSideSell,
	})
	assert.Equal(t, tx.TesSUCCESS, result)
}

func TestCreateSellOfferFailsIfSubmitterDoesNotHold(t *testing.T) {
	store := memview.New()
	issuer := [20]byte{2}
	other := [20]byte{3}
	seedAccount(store, issuer)
	seedAccount(store, other)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, issuer, FlagTransferable)

	_, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: other,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(500),
		Side:      sle.OfferSideSell,
	})
	assert.Equal(t, tx.TecNO_ENTRY, result)
}

func TestCreateBuyOfferRequiresNamedOwnerToHold(t *testing.T) {
	store := memview.New()
	issuer := [20]byte{4}
	buyer := [20]byte{5}
	seedAccount(store, issuer)
	seedAccount(store, buyer)
	store.CreditNative(buyer, 500)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, issuer, FlagTransferable)

	owner := issuer
	_, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: buyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(500),
		Side:      sle.OfferSideBuy,
		Owner:     &owner,
	})
	assert.Equal(t, tx.TesSUCCESS, result)
}

func TestCreateBuyOfferFailsWhenSubmitterCannotCoverAmount(t *testing.T) {
	store := memview.New()
	issuer := [20]byte{14}
	buyer := [20]byte{15}
	seedAccount(store, issuer)
	seedAccount(store, buyer)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, issuer, FlagTransferable)

	owner := issuer
	_, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: buyer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(500),
		Side:      sle.OfferSideBuy,
		Owner:     &owner,
	})
	assert.Equal(t, tx.TecINSUFFICIENT_FUNDS, result, "buyer has no native balance to cover the offer")
}

func TestCreateOfferAllowsIssuerToListNonTransferable(t *testing.T) {
	store := memview.New()
	issuer := [20]byte{6}
	other := [20]byte{7}
	seedAccount(store, issuer)
	seedAccount(store, other)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, issuer, 0)

	_, result := CreateOffer(ctx, CreateOfferParams{
		Submitter: issuer,
		NFTokenID: id,
		Amount:    sle.NewNativeAmount(500),
		Side:      sle.OfferSideSell,
	})
	assert.Equal(t, tx.TesSUCCESS, result, "the issuer may always list a non-transferable token")
}

func TestCreateOfferDestinationMustExistAndDifferFromSubmitter(t *testing.T) {
	store := memview.New()
	seller := [20]byte{8}
	seedAccount(store, seller)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, seller, FlagTransferable)

	_, result := CreateOffer(ctx, CreateOfferParams{
		Submitter:   seller,
		NFTokenID:   id,
		Amount:      sle.NewNativeAmount(500),
		Side:        sle.OfferSideSell,
		Destination: &seller,
	})
	assert.Equal(t, tx.TemDST_IS_SRC, result)

	ghost := [20]byte{9, 9, 9}
	_, result = CreateOffer(ctx, CreateOfferParams{
		Submitter:   seller,
		NFTokenID:   id,
		Amount:      sle.NewNativeAmount(500),
		Side:        sle.OfferSideSell,
		Destination: &ghost,
	})
	assert.Equal(t, tx.TecNO_ENTRY, result)
}

func TestCancelOffersRejectsBatchOfZeroOrDuplicates(t *testing.T) {
	store := memview.New()
	seller := [20]byte{10}
	seedAccount(store, seller)
	ctx := newTestContext(store)

	assert.Equal(t, tx.TemMALFORMED, CancelOffers(ctx, seller, nil, 0))

	key := [32]byte{1}
	assert.Equal(t, tx.TemMALFORMED, CancelOffers(ctx, seller, [][32]byte{key, key}, 0))
}

func TestCancelOffersByOwnerDestinationOrExpiry(t *testing.T) {
	store := memview.New()
	seller := [20]byte{11}
	destination := [20]byte{12}
	stranger := [20]byte{13}
	seedAccount(store, seller)
	seedAccount(store, destination)
	seedAccount(store, stranger)
	ctx := newTestContext(store)
	id := mintOne(t, ctx, seller, FlagTransferable)

	expiration := uint32(500)
	key, result := CreateOffer(ctx, CreateOfferParams{
		Submitter:   seller,
		NFTokenID:   id,
		Amount:      sle.NewNativeAmount(500),
		Side:        sle.OfferSideSell,
		Destination: &destination,
		Expiration:  &expiration,
	})
	require.Equal(t, tx.TesSUCCESS, result)

	result = CancelOffers(ctx, stranger, [][32]byte{key}, 100)
	assert.Equal(t, tx.TecNO_PERMISSION, result, "not yet expired, and stranger is neither owner nor destination")

	result = CancelOffers(ctx, destination, [][32]byte{key}, 100)
	assert.Equal(t, tx.TesSUCCESS, result)
}
