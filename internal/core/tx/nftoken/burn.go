package nftoken

import (
	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

// MaxOffersPerBurn bounds the number of offers a single burn will
// cascade-delete, keeping the metadata of one transaction bounded.
const MaxOffersPerBurn = 500

// Burn removes id from owner's directory after deleting every buy and
// sell offer standing against it, and credits the issuer's burned-count.
func Burn(ctx *tx.ApplyContext, submitter, owner [20]byte, id ID) tx.Result {
	store := ViewPageStore{View: ctx.View}
	token, exists, err := FindToken(store, owner, id)
	if err != nil {
		return tx.TecINTERNAL
	}
	if !exists {
		return tx.TecNO_ENTRY
	}

	if submitter != owner {
		if !id.IsBurnable() {
			return tx.TecNO_PERMISSION
		}
		issuer, exists, err := ctx.View.ReadAccount(id.Issuer())
		if err != nil {
			return tx.TecINTERNAL
		}
		authorized := submitter == id.Issuer()
		if !authorized && exists && issuer.HasAuthorizedMinter {
			authorized = issuer.AuthorizedMinter == submitter
		}
		if !authorized {
			return tx.TecNO_PERMISSION
		}
	}

	buyDir, _, err := readDirectory(ctx.View, offerDirRoot(id, sle.OfferSideBuy))
	if err != nil {
		return tx.TecINTERNAL
	}
	sellDir, _, err := readDirectory(ctx.View, offerDirRoot(id, sle.OfferSideSell))
	if err != nil {
		return tx.TecINTERNAL
	}
	total := 0
	if buyDir != nil {
		total += len(buyDir.Indexes)
	}
	if sellDir != nil {
		total += len(sellDir.Indexes)
	}
	if total > MaxOffersPerBurn {
		return tx.TecTOO_BIG
	}

	for _, dir := range []*sle.DirectoryNode{buyDir, sellDir} {
		if dir == nil {
			continue
		}
		for _, offerKey := range append([][32]byte{}, dir.Indexes...) {
			k := keyletOffer(offerKey)
			offer, exists, err := readOffer(ctx.View, k)
			if err != nil {
				return tx.TecINTERNAL
			}
			if !exists {
				continue
			}
			if err := deleteOffer(ctx.View, k, offer); err != nil {
				return tx.TecINTERNAL
			}
		}
	}

	ownerCountHook := func() error { return ctx.View.AdjustOwnerCount(owner, -1) }
	if err := Remove(store, owner, id, ownerCountHook, ownerCountHook); err != nil {
		return tx.TecINTERNAL
	}

	issuer, exists, err := ctx.View.ReadAccount(id.Issuer())
	if err != nil {
		return tx.TecINTERNAL
	}
	if exists {
		issuer.BurnedNFTokens++
		if err := ctx.View.WriteAccount(issuer); err != nil {
			return tx.TecINTERNAL
		}
	}

	_ = token
	return tx.TesSUCCESS
}

func keyletOffer(key [32]byte) keylet.Keylet {
	return keylet.Keylet{Type: keylet.TypeNFTokenOffer, Key: key}
}
