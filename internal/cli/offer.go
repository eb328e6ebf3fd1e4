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

var offerCreateFlags struct {
	owner       string
	destination string
	expiration  uint32
	sell        bool
}

var offerCreateCmd = &cobra.Command{
	Use:   "create <submitter-hex> <nftoken-id-hex> <drops>",
	Short: "Create a buy or sell offer for an NFT",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		submitter, err := decodeAccount(args[0])
		if err != nil {
			return err
		}
		id, err := decodeID(args[1])
		if err != nil {
			return err
		}
		drops, err := decodeDrops(args[2])
		if err != nil {
			return err
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

		p := nftoken.CreateOfferParams{
			Submitter: submitter,
			NFTokenID: id,
			Amount:    sle.NewNativeAmount(drops),
		}
		if offerCreateFlags.sell {
			p.Side = sle.OfferSideSell
		} else {
			p.Side = sle.OfferSideBuy
		}
		if offerCreateFlags.owner != "" {
			owner, err := decodeAccount(offerCreateFlags.owner)
			if err != nil {
				return err
			}
			p.Owner = &owner
		}
		if offerCreateFlags.destination != "" {
			dst, err := decodeAccount(offerCreateFlags.destination)
			if err != nil {
				return err
			}
			p.Destination = &dst
		}
		if offerCreateFlags.expiration != 0 {
			p.Expiration = &offerCreateFlags.expiration
		}

		ctx := &tx.ApplyContext{
			View:   store,
			Config: tx.EngineConfig{Fees: cfg.Fees(), Rules: cfg.Rules()},
		}
		key, result := nftoken.CreateOffer(ctx, p)
		if result != tx.TesSUCCESS {
			return fmt.Errorf("create offer failed: %s", result)
		}
		fmt.Println(hex.EncodeToString(key[:]))
		return nil
	},
}

var offerCancelCmd = &cobra.Command{
	Use:   "cancel <submitter-hex> <offer-key-hex>...",
	Short: "Cancel one or more outstanding NFT offers",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		submitter, err := decodeAccount(args[0])
		if err != nil {
			return err
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

		keys := make([][32]byte, 0, len(args)-1)
		for _, a := range args[1:] {
			raw, err := hex.DecodeString(a)
			if err != nil || len(raw) != 32 {
				return fmt.Errorf("invalid offer key %q", a)
			}
			var k [32]byte
			copy(k[:], raw)
			keys = append(keys, k)
		}

		ctx := &tx.ApplyContext{
			View:   store,
			Config: tx.EngineConfig{Fees: cfg.Fees(), Rules: cfg.Rules()},
		}
		if result := nftoken.CancelOffers(ctx, submitter, keys, 0); result != tx.TesSUCCESS {
			return fmt.Errorf("cancel offers failed: %s", result)
		}
		fmt.Println("ok")
		return nil
	},
}

func decodeID(s string) (nftoken.ID, error) {
	var id nftoken.ID
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid nftoken id hex: %w", err)
	}
	if len(raw) != 32 {
		return id, fmt.Errorf("nftoken id must be 32 bytes, got %d", len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

func decodeDrops(s string) (int64, error) {
	var drops int64
	if _, err := fmt.Sscanf(s, "%d", &drops); err != nil {
		return 0, fmt.Errorf("invalid drops amount: %w", err)
	}
	return drops, nil
}

func init() {
	offerCreateCmd.Flags().StringVar(&offerCreateFlags.owner, "owner", "", "NFT's current holder (required for buy offers)")
	offerCreateCmd.Flags().StringVar(&offerCreateFlags.destination, "destination", "", "sell-offer-only restricted buyer")
	offerCreateCmd.Flags().Uint32Var(&offerCreateFlags.expiration, "expiration", 0, "close-time expiration")
	offerCreateCmd.Flags().BoolVar(&offerCreateFlags.sell, "sell", false, "create a sell offer instead of a buy offer")

	offerCmd := &cobra.Command{
		Use:   "offer",
		Short: "Manage NFT offers",
	}
	offerCmd.AddCommand(offerCreateCmd, offerCancelCmd)
	rootCmd.AddCommand(offerCmd)
}
