package nftoken

import (
	"github.com/solmsted/rippled/internal/core/XRPAmount"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

// xrpOf extracts the native drops carried by a native sle.Amount. It is
// only ever called on amounts already known to be native (account
// balances), so the IOU fields are irrelevant.
func xrpOf(a sle.Amount) XRPAmount.XRPAmount {
	return XRPAmount.NewXRPAmount(a.Drops)
}
