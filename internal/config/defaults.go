package config

import "github.com/spf13/viper"

// setDefaults sets every value a fresh config carries when a setting is
// absent from both the config file and the environment, matching the
// ledger's standard reserve schedule.
func setDefaults(v *viper.Viper) {
	v.SetDefault("network_id", 0)
	v.SetDefault("database_path", "/var/lib/nftledgerd/db")
	v.SetDefault("cache_size", 4096)

	v.SetDefault("reserve.base", 10)
	v.SetDefault("reserve.reserve", 5_000_000)
	v.SetDefault("reserve.increment", 1_000_000)

	v.SetDefault("amendments", []string{
		"NonFungibleTokensV1",
		"NonFungibleTokensV1_1",
		"fixNFTokenDirV1",
		"fixNFTokenNegOffer",
		"fixNonFungibleTokensV1_2",
		"fixRemoveNFTokenAutoTrustLine",
	})
}
