// Package cli wires the nftledgerd binary's subcommands. The daemon
// exposes the NFT subsystem standalone: there is no peer protocol or
// consensus engine here, only the ledger-object algebra the rest of
// this module implements and a pebble-backed view to run it against.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solmsted/rippled/internal/config"
)

var (
	configFile string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "nftledgerd",
	Short: "nftledgerd - a standalone NFT ledger subsystem",
	Long: `nftledgerd hosts the NFT identifier, directory, offer and
settlement logic of a distributed ledger's NFT subsystem against a local
pebble database, for inspection and scripted exercise outside of any
consensus network.`,
	Version: "0.1.0-dev",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "nftledgerd.db", "pebble database path")
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(configFile)
}
