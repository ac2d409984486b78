package main

import (
	"context"

	"go.uber.org/zap"

	"triply/internal/config"
	"triply/internal/store"
)

// openStore picks the persistence backend named by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (store.Store, error) {
	if cfg.StoreDriver == config.DriverMongo {
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, lg)
	}
	return store.NewMemoryStore(cfg.DataFile, lg)
}
