package nftoken

import (
	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

const MaxURILength = 256

// PreflightMint performs the stateless checks on a mint request: flag
// bits, transfer fee range, and URI shape. It never touches the ledger.
func PreflightMint(flags uint16, transferFee *uint16, uri []byte) tx.Result {
	if !ValidMintFlags(flags) {
		return tx.TemINVALID_FLAG
	}
	if transferFee != nil {
		if *transferFee > MaxTransferFee {
			return tx.TemBAD_NFTOKEN_TRANSFER_FEE
		}
		if *transferFee > 0 && flags&FlagTransferable == 0 {
			return tx.TemMALFORMED
		}
	}
	if uri != nil {
		if len(uri) == 0 || len(uri) > MaxURILength {
			return tx.TemMALFORMED
		}
	}
	return tx.TesSUCCESS
}

// Mint allocates the next sequence for the effective issuer, builds the
// token's identifier, and inserts it into submitter's directory,
// charging page reserve if a new page is created.
func Mint(ctx *tx.ApplyContext, submitter [20]byte, taxon uint32, flags uint16, externalIssuer *[20]byte, transferFee *uint16, uri []byte) (ID, tx.Result) {
	if r := PreflightMint(flags, transferFee, uri); r != tx.TesSUCCESS {
		return ID{}, r
	}

	issuerID := submitter
	if externalIssuer != nil {
		if *externalIssuer == submitter {
			return ID{}, tx.TemMALFORMED
		}
		issuerID = *externalIssuer
	}

	issuer, exists, err := ctx.View.ReadAccount(issuerID)
	if err != nil {
		return ID{}, tx.TecINTERNAL
	}
	if !exists {
		return ID{}, tx.TecNO_ENTRY
	}
	if externalIssuer != nil {
		if !issuer.HasAuthorizedMinter || issuer.AuthorizedMinter != submitter {
			return ID{}, tx.TecNO_PERMISSION
		}
	}

	seq, ok := issuer.NextNFTokenSequence()
	if !ok {
		return ID{}, tx.TecMAX_SEQUENCE_REACHED
	}

	var fee uint16
	if transferFee != nil {
		fee = *transferFee
	}
	id := BuildID(flags, fee, issuerID, taxon, seq)

	store := ViewPageStore{View: ctx.View}
	opensNewPage, err := willCreatePage(store, submitter, id)
	if err != nil {
		return ID{}, tx.TecINTERNAL
	}
	if opensNewPage {
		priorOwnerCount, err := ctx.View.OwnerCount(submitter)
		if err != nil {
			return ID{}, tx.TecINTERNAL
		}
		balance, err := ctx.View.AccountHolds(submitter, sle.NativeAsset())
		if err != nil {
			return ID{}, tx.TecINTERNAL
		}
		if r := ctx.CheckReserveIncrease(xrpOf(balance), priorOwnerCount); r != tx.TesSUCCESS {
			return ID{}, r
		}
	}

	issuer.MintedNFTokens = seq + 1
	if err := ctx.View.WriteAccount(issuer); err != nil {
		return ID{}, tx.TecINTERNAL
	}

	hook := func() error { return ctx.View.AdjustOwnerCount(submitter, 1) }
	token := sle.NFTokenData{NFTokenID: id, URI: uri}
	if err := Insert(store, submitter, token, hook); err != nil {
		if err == ErrNoSuitablePage {
			return ID{}, tx.TecNO_SUITABLE_NFTOKEN_PAGE
		}
		return ID{}, tx.TecINTERNAL
	}

	return id, tx.TesSUCCESS
}

// willCreatePage reports whether inserting id into owner's directory
// would allocate a new page: either the directory has no page yet, or
// the page that would hold id is already at capacity and must split.
func willCreatePage(store PageStore, owner [20]byte, id ID) (bool, error) {
	_, page, found, err := Locate(store, owner, id)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}
	return len(page.NFTokens) >= sle.MaxTokensPerPage, nil
}
