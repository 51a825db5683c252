package nakama

const (
	// RpcFoundingPreview is the Nakama RPC id clients call to see the bidding limits for a corporation.
	RpcFoundingPreview = "founding_preview"

	// RpcPurchasableTrains is the Nakama RPC id clients call to list the trains a corporation may buy.
	RpcPurchasableTrains = "purchasable_trains"
)

// Runtime environment keys.
const (
	envConfigPath  = "usa_config_path"
	envMetroDenver = "usa_metro_denver"

	defaultConfigPath = "data/variant.yaml"
)
