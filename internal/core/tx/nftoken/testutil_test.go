package nftoken

import (
	"github.com/solmsted/rippled/internal/core/XRPAmount"
	"github.com/solmsted/rippled/internal/core/amendment"
	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/sle"
	"github.com/solmsted/rippled/internal/storage/memview"
)

func newTestContext(view sle.LedgerView) *tx.ApplyContext {
	return &tx.ApplyContext{
		View: view,
		Config: tx.EngineConfig{
			Fees:      XRPAmount.Fees{Base: 10, Reserve: 5_000_000, Increment: 1_000_000},
			Rules:     amendment.AllSupportedRules(),
			CloseTime: 1000,
		},
	}
}

func seedAccount(store *memview.Store, id [20]byte) {
	store.PutAccount(sle.AccountRoot{AccountID: id})
}
