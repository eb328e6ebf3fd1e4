package nftoken

import (
	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

const MaxCancelBatch = 500

// CreateOfferParams carries an NFTokenCreateOffer transaction's fields.
type CreateOfferParams struct {
	Submitter   [20]byte
	NFTokenID   ID
	Amount      sle.Amount
	Side        sle.OfferSide
	Owner       *[20]byte // required for buy offers: the NFT's current holder
	Destination *[20]byte
	Expiration  *uint32
}

func preflightCreateOffer(p CreateOfferParams) tx.Result {
	if p.Side == sle.OfferSideBuy {
		if p.Amount.IsZero() || p.Amount.IsNegative() {
			return tx.TemBAD_AMOUNT
		}
	} else if p.Amount.IsNegative() {
		return tx.TemBAD_AMOUNT
	}
	if p.Expiration != nil && *p.Expiration == 0 {
		return tx.TemBAD_EXPIRATION
	}
	if p.Destination != nil && p.Side != sle.OfferSideSell {
		return tx.TemMALFORMED
	}
	if p.Side == sle.OfferSideBuy && p.Owner == nil {
		return tx.TemMALFORMED
	}
	if p.Owner != nil && *p.Owner == p.Submitter {
		return tx.TemMALFORMED
	}
	if p.Destination != nil && *p.Destination == p.Submitter {
		return tx.TemDST_IS_SRC
	}
	return tx.TesSUCCESS
}

// CreateOffer validates and applies an NFTokenCreateOffer.
func CreateOffer(ctx *tx.ApplyContext, p CreateOfferParams) (offerKey [32]byte, result tx.Result) {
	if r := preflightCreateOffer(p); r != tx.TesSUCCESS {
		return [32]byte{}, r
	}

	if p.NFTokenID.IsOnlyNative() && !p.Amount.Native {
		return [32]byte{}, tx.TemMALFORMED
	}

	store := ViewPageStore{View: ctx.View}
	switch p.Side {
	case sle.OfferSideBuy:
		if _, exists, err := FindToken(store, *p.Owner, p.NFTokenID); err != nil {
			return [32]byte{}, tx.TecINTERNAL
		} else if !exists {
			return [32]byte{}, tx.TecNO_ENTRY
		}
		if held, err := ctx.View.AccountHolds(p.Submitter, p.Amount.AssetOf()); err != nil {
			return [32]byte{}, tx.TecINTERNAL
		} else if held.Cmp(p.Amount) < 0 {
			return [32]byte{}, tx.TecINSUFFICIENT_FUNDS
		}
	case sle.OfferSideSell:
		if _, exists, err := FindToken(store, p.Submitter, p.NFTokenID); err != nil {
			return [32]byte{}, tx.TecINTERNAL
		} else if !exists {
			return [32]byte{}, tx.TecNO_ENTRY
		}
	}

	if !p.NFTokenID.IsTransferable() {
		issuer := p.NFTokenID.Issuer()
		isIssuerOrMinter := p.Submitter == issuer
		if !isIssuerOrMinter {
			if acct, exists, err := ctx.View.ReadAccount(issuer); err == nil && exists {
				isIssuerOrMinter = acct.HasAuthorizedMinter && acct.AuthorizedMinter == p.Submitter
			}
		}
		if !isIssuerOrMinter {
			return [32]byte{}, tx.TefNFTOKEN_IS_NOT_TRANSFERABLE
		}
	}

	if p.Destination != nil {
		if _, exists, err := ctx.View.ReadAccount(*p.Destination); err != nil {
			return [32]byte{}, tx.TecINTERNAL
		} else if !exists {
			return [32]byte{}, tx.TecNO_ENTRY
		}
	}

	priorOwnerCount, err := ctx.View.OwnerCount(p.Submitter)
	if err != nil {
		return [32]byte{}, tx.TecINTERNAL
	}
	balance, err := ctx.View.AccountHolds(p.Submitter, sle.NativeAsset())
	if err != nil {
		return [32]byte{}, tx.TecINTERNAL
	}
	if r := ctx.CheckReserveIncrease(xrpOf(balance), priorOwnerCount); r != tx.TesSUCCESS {
		return [32]byte{}, r
	}

	offer := &sle.NFTokenOfferData{
		Owner:     p.Submitter,
		NFTokenID: p.NFTokenID,
		Amount:    p.Amount,
		Side:      p.Side,
	}
	if p.Destination != nil {
		offer.Destination, offer.HasDestination = *p.Destination, true
	}
	if p.Expiration != nil {
		offer.Expiration, offer.HasExpiration = *p.Expiration, true
	}

	var seq uint32
	if ctx.Account != nil {
		seq = ctx.Account.Sequence
	}
	k := keylet.NFTokenOffer(p.Submitter, seq)
	offer.Key = k.Key

	if err := writeOffer(ctx.View, k, offer); err != nil {
		return [32]byte{}, tx.TecINTERNAL
	}
	if err := dirLink(ctx.View, offerDirRoot(p.NFTokenID, p.Side), nil, k.Key); err != nil {
		return [32]byte{}, tx.TecINTERNAL
	}
	ownerDir := keylet.Keylet{Type: keylet.TypeDirectoryNode, Key: keylet.OwnerDirRoot(p.Submitter)}
	if err := dirLink(ctx.View, ownerDir, &p.Submitter, k.Key); err != nil {
		return [32]byte{}, tx.TecINTERNAL
	}
	if err := ctx.View.AdjustOwnerCount(p.Submitter, 1); err != nil {
		return [32]byte{}, tx.TecINTERNAL
	}

	return k.Key, tx.TesSUCCESS
}

// CancelOffers removes a batch of offers the submitter is entitled to
// cancel: its own, ones naming it as destination, or any expired offer.
func CancelOffers(ctx *tx.ApplyContext, submitter [20]byte, offerKeys [][32]byte, closeTime uint32) tx.Result {
	if len(offerKeys) == 0 || len(offerKeys) > MaxCancelBatch {
		return tx.TemMALFORMED
	}
	seen := make(map[[32]byte]bool, len(offerKeys))
	for _, key := range offerKeys {
		if seen[key] {
			return tx.TemMALFORMED
		}
		seen[key] = true
	}
	for _, key := range offerKeys {
		k := keyletOffer(key)
		offer, exists, err := readOffer(ctx.View, k)
		if err != nil {
			return tx.TecINTERNAL
		}
		if !exists {
			continue
		}
		expired := offer.IsExpired(closeTime)
		permitted := offer.Owner == submitter || (offer.HasDestination && offer.Destination == submitter) || expired
		if !permitted {
			return tx.TecNO_PERMISSION
		}
		if err := deleteOffer(ctx.View, k, offer); err != nil {
			return tx.TecINTERNAL
		}
	}
	return tx.TesSUCCESS
}
