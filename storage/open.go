package storage

import (
	"context"
	"fmt"

	"github.com/cppla/miniblog/config"
	"github.com/cppla/miniblog/utils"
)

// Open connects the backend named by cfg.StoreDriver and returns it
// instrumented, together with a function releasing its connections.
func Open(ctx context.Context, cfg config.AppConfig) (PostStore, func() error, error) {
	var store PostStore
	closer := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverDynamoDB:
		client, err := config.NewDynamoClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store = NewDynamoStore(client, cfg.BlogTable)
	case config.DriverRedis:
		client, err := utils.NewRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store = NewRedisStore(client, cfg.BlogTable)
		closer = client.Close
	case config.DriverMySQL:
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		store = NewGormStore(db, cfg.BlogTable)
		closer = sqlDB.Close
	case config.DriverPostgres:
		db, err := config.NewPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		store = NewPostgresStore(db, cfg.BlogTable)
		closer = db.Close
	case config.DriverMemory:
		store = NewMemoryStore()
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	utils.Sugar.Infow("post store ready", "driver", cfg.StoreDriver, "table", cfg.BlogTable)
	return Instrument(store, cfg.StoreDriver), closer, nil
}
