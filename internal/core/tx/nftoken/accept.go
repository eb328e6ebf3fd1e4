package nftoken

import (
	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

// AcceptParams carries an NFTokenAcceptOffer transaction's fields.
// Exactly one of BuyOfferKey/SellOfferKey set is direct mode; both set
// is brokered mode.
type AcceptParams struct {
	Submitter   [20]byte
	BuyOfferKey *[32]byte
	SellOfferKey *[32]byte
	BrokerFee   *sle.Amount
	CloseTime   uint32
}

func loadLiveOffer(view sle.LedgerView, key [32]byte, closeTime uint32) (*sle.NFTokenOfferData, tx.Result) {
	k := keyletOffer(key)
	offer, exists, err := readOffer(view, k)
	if err != nil {
		return nil, tx.TecINTERNAL
	}
	if !exists {
		return nil, tx.TecOBJECT_NOT_FOUND
	}
	if offer.IsExpired(closeTime) {
		return nil, tx.TecEXPIRED
	}
	return offer, tx.TesSUCCESS
}

// Accept applies an NFTokenAcceptOffer transaction, in either direct or
// brokered mode depending on which of BuyOfferKey/SellOfferKey are set.
func Accept(ctx *tx.ApplyContext, p AcceptParams) tx.Result {
	if p.BuyOfferKey == nil && p.SellOfferKey == nil {
		return tx.TemMALFORMED
	}
	brokered := p.BuyOfferKey != nil && p.SellOfferKey != nil
	if !brokered && p.BrokerFee != nil {
		return tx.TemMALFORMED
	}
	if p.BrokerFee != nil && (p.BrokerFee.IsZero() || p.BrokerFee.IsNegative()) {
		return tx.TemMALFORMED
	}

	var buy, sell *sle.NFTokenOfferData
	var buyKey, sellKey [32]byte
	if p.BuyOfferKey != nil {
		buyKey = *p.BuyOfferKey
		o, r := loadLiveOffer(ctx.View, buyKey, p.CloseTime)
		if r != tx.TesSUCCESS {
			return r
		}
		buy = o
	}
	if p.SellOfferKey != nil {
		sellKey = *p.SellOfferKey
		o, r := loadLiveOffer(ctx.View, sellKey, p.CloseTime)
		if r != tx.TesSUCCESS {
			return r
		}
		sell = o
	}

	var nftID ID
	var buyer, seller [20]byte
	var amount sle.Amount

	if brokered {
		if buy.Side != sle.OfferSideBuy || sell.Side != sle.OfferSideSell {
			return tx.TecNFTOKEN_OFFER_TYPE_MISMATCH
		}
		if buy.NFTokenID != sell.NFTokenID {
			return tx.TecNFTOKEN_BUY_SELL_MISMATCH
		}
		if !buy.Amount.SameAsset(sell.Amount) {
			return tx.TecNFTOKEN_BUY_SELL_MISMATCH
		}
		if buy.Amount.Cmp(sell.Amount) < 0 {
			return tx.TecINSUFFICIENT_PAYMENT
		}
		if sell.HasDestination && sell.Destination != buy.Owner {
			return tx.TecNO_PERMISSION
		}
		if p.BrokerFee != nil {
			if !p.BrokerFee.SameAsset(buy.Amount) {
				return tx.TemMALFORMED
			}
			if p.BrokerFee.Cmp(buy.Amount) >= 0 {
				return tx.TecINSUFFICIENT_PAYMENT
			}
			remainder := buy.Amount.Sub(*p.BrokerFee)
			if sell.Amount.Cmp(remainder) > 0 {
				return tx.TecINSUFFICIENT_PAYMENT
			}
		}
		nftID = ID(buy.NFTokenID)
		store := ViewPageStore{View: ctx.View}
		if _, held, err := FindToken(store, sell.Owner, nftID); err != nil {
			return tx.TecINTERNAL
		} else if !held {
			return tx.TecNO_PERMISSION
		}
		buyer, seller = buy.Owner, sell.Owner
		amount = buy.Amount
	} else if buy != nil {
		if buy.Side != sle.OfferSideBuy {
			return tx.TecNFTOKEN_OFFER_TYPE_MISMATCH
		}
		if buy.Owner == p.Submitter {
			return tx.TecCANT_ACCEPT_OWN_NFTOKEN_OFFER
		}
		nftID = ID(buy.NFTokenID)
		store := ViewPageStore{View: ctx.View}
		if _, held, err := FindToken(store, p.Submitter, nftID); err != nil {
			return tx.TecINTERNAL
		} else if !held {
			return tx.TecNO_PERMISSION
		}
		buyer, seller = buy.Owner, p.Submitter
		amount = buy.Amount
	} else {
		if sell.Side != sle.OfferSideSell {
			return tx.TecNFTOKEN_OFFER_TYPE_MISMATCH
		}
		if sell.Owner == p.Submitter {
			return tx.TecCANT_ACCEPT_OWN_NFTOKEN_OFFER
		}
		if sell.HasDestination && sell.Destination != p.Submitter {
			return tx.TecNO_PERMISSION
		}
		nftID = ID(sell.NFTokenID)
		store := ViewPageStore{View: ctx.View}
		if _, held, err := FindToken(store, sell.Owner, nftID); err != nil {
			return tx.TecINTERNAL
		} else if !held {
			return tx.TecNO_PERMISSION
		}
		buyer, seller = p.Submitter, sell.Owner
		amount = sell.Amount
	}

	if held, err := ctx.View.AccountHolds(buyer, amount.AssetOf()); err != nil {
		return tx.TecINTERNAL
	} else if held.Cmp(amount) < 0 {
		return tx.TecINSUFFICIENT_FUNDS
	}

	// Step 1: delete the offer object(s).
	if buy != nil {
		if err := deleteOffer(ctx.View, keyletOffer(buyKey), buy); err != nil {
			return tx.TecINTERNAL
		}
	}
	if sell != nil {
		if err := deleteOffer(ctx.View, keyletOffer(sellKey), sell); err != nil {
			return tx.TecINTERNAL
		}
	}

	// Step 3: broker cut.
	if brokered && p.BrokerFee != nil && !p.BrokerFee.IsZero() {
		if err := ctx.View.SendAmount(buyer, p.Submitter, *p.BrokerFee); err != nil {
			return tx.TecINSUFFICIENT_FUNDS
		}
		amount = amount.Sub(*p.BrokerFee)
	}

	// Step 4: issuer royalty on the post-broker remainder.
	issuer := nftID.Issuer()
	if issuer != buyer && issuer != seller {
		feeBps := int64(nftID.TransferFee())
		var cut sle.Amount
		if amount.Native {
			cut = sle.FeeRateNative(amount, uint32(feeBps), TransferFeeDivisor)
		} else {
			cut = sle.FeeRateIssued(amount, uint32(feeBps), TransferFeeDivisor)
		}
		if !cut.IsZero() {
			if err := ctx.View.SendAmount(buyer, issuer, cut); err != nil {
				return tx.TecINSUFFICIENT_FUNDS
			}
			amount = amount.Sub(cut)
		}
	}

	// Step 5: seller payout on whatever remains.
	if !amount.IsZero() {
		if err := ctx.View.SendAmount(buyer, seller, amount); err != nil {
			return tx.TecINSUFFICIENT_FUNDS
		}
	}

	// Step 6: transfer the NFT. A successful remove with a failed insert
	// is a fatal consistency error, not a user-visible one.
	store := ViewPageStore{View: ctx.View}
	sellerOwnerCountHook := func() error { return ctx.View.AdjustOwnerCount(seller, -1) }
	if err := Remove(store, seller, nftID, sellerOwnerCountHook, sellerOwnerCountHook); err != nil {
		return tx.TecINTERNAL
	}
	buyerOwnerCountHook := func() error { return ctx.View.AdjustOwnerCount(buyer, 1) }
	if err := Insert(store, buyer, sle.NFTokenData{NFTokenID: nftID}, buyerOwnerCountHook); err != nil {
		return tx.TefINTERNAL
	}

	return tx.TesSUCCESS
}
