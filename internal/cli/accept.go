package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/nftoken"
	"github.com/solmsted/rippled/internal/core/tx/sle"
	"github.com/solmsted/rippled/internal/storage/pebblestore"
)

var acceptFlags struct {
	buyOffer  string
	sellOffer string
	brokerFee int64
}

var acceptCmd = &cobra.Command{
	Use:   "accept <submitter-hex>",
	Short: "Accept a direct or brokered NFT offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		submitter, err := decodeAccount(args[0])
		if err != nil {
			return err
		}
		if acceptFlags.buyOffer == "" && acceptFlags.sellOffer == "" {
			return fmt.Errorf("at least one of --buy-offer or --sell-offer is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := pebblestore.Open(dbPath, pebblestore.Config{CacheSize: cfg.CacheSize})
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		p := nftoken.AcceptParams{Submitter: submitter}
		if acceptFlags.buyOffer != "" {
			k, err := decodeOfferKey(acceptFlags.buyOffer)
			if err != nil {
				return err
			}
			p.BuyOfferKey = &k
		}
		if acceptFlags.sellOffer != "" {
			k, err := decodeOfferKey(acceptFlags.sellOffer)
			if err != nil {
				return err
			}
			p.SellOfferKey = &k
		}
		if acceptFlags.brokerFee != 0 {
			fee := sle.NewNativeAmount(acceptFlags.brokerFee)
			p.BrokerFee = &fee
		}

		ctx := &tx.ApplyContext{
			View:   store,
			Config: tx.EngineConfig{Fees: cfg.Fees(), Rules: cfg.Rules()},
		}
		if result := nftoken.Accept(ctx, p); result != tx.TesSUCCESS {
			return fmt.Errorf("accept failed: %s", result)
		}
		fmt.Println("ok")
		return nil
	},
}

func decodeOfferKey(s string) ([32]byte, error) {
	var k [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return k, fmt.Errorf("invalid offer key %q", s)
	}
	copy(k[:], raw)
	return k, nil
}

func init() {
	acceptCmd.Flags().StringVar(&acceptFlags.buyOffer, "buy-offer", "", "buy offer key (hex)")
	acceptCmd.Flags().StringVar(&acceptFlags.sellOffer, "sell-offer", "", "sell offer key (hex)")
	acceptCmd.Flags().Int64Var(&acceptFlags.brokerFee, "broker-fee", 0, "broker fee in drops, brokered mode only")
	rootCmd.AddCommand(acceptCmd)
}
