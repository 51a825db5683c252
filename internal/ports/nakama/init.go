package nakama

import (
	"context"
	"database/sql"
	"strconv"

	"railfounding/internal/config"
	"railfounding/internal/gamedata"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads the variant config and game catalog and registers the RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	path := defaultConfigPath
	if val, ok := env[envConfigPath]; ok && val != "" {
		path = val
	}
	if err := config.LoadVariantConfig(path); err != nil {
		logger.Warn("Variant config not loaded from %s, using defaults: %v", path, err)
	}
	cfg := config.GetVariantConfig()
	if val, ok := env[envMetroDenver]; ok {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.MetroDenver = b
		}
	}

	catalog, err := gamedata.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("Failed to load catalog %s: %v", cfg.CatalogPath, err)
		return err
	}

	if err := registerRPCs(initializer, newFoundingService(cfg, catalog)); err != nil {
		return err
	}

	logger.Info("Railfounding Go module loaded.")
	return nil
}
