package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solmsted/rippled/internal/storage/pebblestore"
)

var accountCmd = &cobra.Command{
	Use:   "account <account-hex>",
	Short: "Show an account's NFT-related counters",
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

		a, exists, err := store.ReadAccount(account)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("no such account")
		}
		ownerCount, err := store.OwnerCount(account)
		if err != nil {
			return err
		}

		fmt.Printf("minted:     %d\n", a.MintedNFTokens)
		fmt.Printf("burned:     %d\n", a.BurnedNFTokens)
		fmt.Printf("ownerCount: %d\n", ownerCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}
