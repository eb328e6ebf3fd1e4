package nftoken

import (
	"bytes"

	"github.com/ugorji/go/codec"

	"github.com/solmsted/rippled/internal/core/ledger/keylet"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

func readDirectory(view sle.LedgerView, k keylet.Keylet) (*sle.DirectoryNode, bool, error) {
	data, err := view.Read(k)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	var dir sle.DirectoryNode
	if err := codec.NewDecoderBytes(data, codecHandle).Decode(&dir); err != nil {
		return nil, false, err
	}
	return &dir, true, nil
}

func writeDirectory(view sle.LedgerView, k keylet.Keylet, dir *sle.DirectoryNode) error {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecHandle).Encode(dir); err != nil {
		return err
	}
	exists, err := view.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return view.Update(k, buf.Bytes())
	}
	return view.Insert(k, buf.Bytes())
}

// dirLink inserts itemKey into the directory rooted at k, creating the
// directory if it does not exist yet. owner is nil for NFT-side buy/sell
// directories, which are not owned by an account the way an owner's
// outgoing-offers directory is.
func dirLink(view sle.LedgerView, k keylet.Keylet, owner *[20]byte, itemKey [32]byte) error {
	dir, exists, err := readDirectory(view, k)
	if err != nil {
		return err
	}
	if !exists {
		dir = &sle.DirectoryNode{RootIndex: k.Key}
		if owner != nil {
			dir.Owner, dir.HasOwner = *owner, true
		}
	}
	dir.Insert(itemKey)
	return writeDirectory(view, k, dir)
}

// dirUnlink removes itemKey from the directory rooted at k, erasing the
// directory if it becomes empty.
func dirUnlink(view sle.LedgerView, k keylet.Keylet, itemKey [32]byte) error {
	dir, exists, err := readDirectory(view, k)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if dir.Remove(itemKey) {
		return view.Erase(k)
	}
	return writeDirectory(view, k, dir)
}

func readOffer(view sle.LedgerView, k keylet.Keylet) (*sle.NFTokenOfferData, bool, error) {
	data, err := view.Read(k)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	var offer sle.NFTokenOfferData
	if err := codec.NewDecoderBytes(data, codecHandle).Decode(&offer); err != nil {
		return nil, false, err
	}
	return &offer, true, nil
}

func writeOffer(view sle.LedgerView, k keylet.Keylet, offer *sle.NFTokenOfferData) error {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecHandle).Encode(offer); err != nil {
		return err
	}
	exists, err := view.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return view.Update(k, buf.Bytes())
	}
	return view.Insert(k, buf.Bytes())
}

// offerDirRoot returns the keylet of the NFT-side directory an offer of
// the given side belongs to.
func offerDirRoot(nftID [32]byte, side sle.OfferSide) keylet.Keylet {
	var key [32]byte
	if side == sle.OfferSideBuy {
		key = keylet.NFTBuyDirRoot(nftID)
	} else {
		key = keylet.NFTSellDirRoot(nftID)
	}
	return keylet.Keylet{Type: keylet.TypeDirectoryNode, Key: key}
}

// deleteOffer removes an offer from both its directories and decrements
// its owner's reserve-backing owner count, then erases the object.
func deleteOffer(view sle.LedgerView, offerKey keylet.Keylet, offer *sle.NFTokenOfferData) error {
	if err := dirUnlink(view, offerDirRoot(offer.NFTokenID, offer.Side), offerKey.Key); err != nil {
		return err
	}
	ownerDir := keylet.Keylet{Type: keylet.TypeDirectoryNode, Key: keylet.OwnerDirRoot(offer.Owner)}
	if err := dirUnlink(view, ownerDir, offerKey.Key); err != nil {
		return err
	}
	if err := view.AdjustOwnerCount(offer.Owner, -1); err != nil {
		return err
	}
	return view.Erase(offerKey)
}
