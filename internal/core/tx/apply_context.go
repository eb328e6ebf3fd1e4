package tx

import (
	"github.com/solmsted/rippled/internal/core/XRPAmount"
	"github.com/solmsted/rippled/internal/core/amendment"
	"github.com/solmsted/rippled/internal/core/tx/sle"
)

// EngineConfig carries the ledger-wide settings a transaction's apply
// phase consults: the reserve schedule and the amendments currently
// live. It has no server/network/config knowledge beyond that.
type EngineConfig struct {
	Fees  XRPAmount.Fees
	Rules *amendment.Rules

	// CloseTime is the close time of the ledger being built, used to
	// evaluate offer expiration.
	CloseTime uint32
}

// ApplyContext is the state and helpers a transaction's Apply method is
// given instead of a long parameter list.
type ApplyContext struct {
	View      sle.LedgerView
	Account   *sle.AccountRoot
	AccountID [20]byte
	Config    EngineConfig
	TxHash    [32]byte
}

// AccountReserve is the total reserve an account with ownerCount owned
// objects must hold.
func (ctx *ApplyContext) AccountReserve(ownerCount uint32) XRPAmount.XRPAmount {
	return ctx.Config.Fees.AccountReserve(int64(ownerCount))
}

// ReserveForNewObject is the reserve required to create one more ledger
// object, given the account's current owner count. The first two owned
// objects are free, matching the ledger's standard reserve schedule.
func (ctx *ApplyContext) ReserveForNewObject(currentOwnerCount uint32) XRPAmount.XRPAmount {
	if currentOwnerCount < 2 {
		return 0
	}
	return ctx.AccountReserve(currentOwnerCount + 1)
}

func (ctx *ApplyContext) CanCreateNewObject(priorBalance XRPAmount.XRPAmount, currentOwnerCount uint32) bool {
	return priorBalance >= ctx.ReserveForNewObject(currentOwnerCount)
}

func (ctx *ApplyContext) CheckReserveIncrease(priorBalance XRPAmount.XRPAmount, currentOwnerCount uint32) Result {
	if !ctx.CanCreateNewObject(priorBalance, currentOwnerCount) {
		return TecINSUFFICIENT_RESERVE
	}
	return TesSUCCESS
}

func (ctx *ApplyContext) Rules() *amendment.Rules {
	if ctx.Config.Rules != nil {
		return ctx.Config.Rules
	}
	return amendment.AllSupportedRules()
}
