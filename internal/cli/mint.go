package cli

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/solmsted/rippled/internal/core/tx"
	"github.com/solmsted/rippled/internal/core/tx/nftoken"
	"github.com/solmsted/rippled/internal/core/tx/sle"
	"github.com/solmsted/rippled/internal/storage/pebblestore"
)

var mintFlags struct {
	taxon        uint32
	burnable     bool
	transferable bool
	transferFee  uint16
	uri          string
}

var mintCmd = &cobra.Command{
	Use:   "mint <issuer-account-hex>",
	Short: "Mint one NFT for the given account and print its identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := decodeAccount(args[0])
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

		if _, exists, err := store.ReadAccount(account); err != nil {
			return err
		} else if !exists {
			if err := store.WriteAccount(&sle.AccountRoot{AccountID: account}); err != nil {
				return err
			}
			log.Printf("issuer %x had no account root, created one", account)
		}

		ctx := &tx.ApplyContext{
			View:      store,
			AccountID: account,
			Config: tx.EngineConfig{
				Fees:  cfg.Fees(),
				Rules: cfg.Rules(),
			},
		}

		var flags uint16
		if mintFlags.burnable {
			flags |= nftoken.FlagBurnable
		}
		if mintFlags.transferable {
			flags |= nftoken.FlagTransferable
		}
		var fee *uint16
		if mintFlags.transferFee > 0 {
			fee = &mintFlags.transferFee
		}

		var uri []byte
		if mintFlags.uri != "" {
			uri = []byte(mintFlags.uri)
		}

		id, result := nftoken.Mint(ctx, account, mintFlags.taxon, flags, nil, fee, uri)
		if result != tx.TesSUCCESS {
			return fmt.Errorf("mint failed: %s", result)
		}
		fmt.Println(hex.EncodeToString(id[:]))
		return nil
	},
}

func decodeAccount(s string) ([20]byte, error) {
	var account [20]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return account, fmt.Errorf("invalid account hex: %w", err)
	}
	if len(raw) != 20 {
		return account, fmt.Errorf("account must be 20 bytes, got %d", len(raw))
	}
	copy(account[:], raw)
	return account, nil
}

func init() {
	mintCmd.Flags().Uint32Var(&mintFlags.taxon, "taxon", 0, "token taxon")
	mintCmd.Flags().BoolVar(&mintFlags.burnable, "burnable", false, "set the burnable flag")
	mintCmd.Flags().BoolVar(&mintFlags.transferable, "transferable", true, "set the transferable flag")
	mintCmd.Flags().Uint16Var(&mintFlags.transferFee, "transfer-fee", 0, "transfer fee in hundred-thousandths")
	mintCmd.Flags().StringVar(&mintFlags.uri, "uri", "", "token metadata URI, 1..256 bytes")
	rootCmd.AddCommand(mintCmd)
}
