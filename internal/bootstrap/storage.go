// Package bootstrap opens the backing services selected by configuration.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/infrastructure/config"
	"github.com/judoclub/clubsite/internal/infrastructure/database"
	"github.com/judoclub/clubsite/internal/infrastructure/repository/memory"
	"github.com/judoclub/clubsite/internal/infrastructure/repository/mongodb"
)

// Storage is an opened repository set and its release function.
type Storage struct {
	Repos contract.Repositories
	Close func()
}

// OpenStorage connects the configured driver. The mongo driver also ensures
// the collection indexes exist.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return &Storage{Repos: memory.NewRepositories(memory.NewStore()), Close: func() {}}, nil
	case config.StorageMongo:
		client, err := database.NewMongoDBClient(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Client.Database(cfg.MongoDBName)
		indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := database.EnsureIndexes(indexCtx, db); err != nil {
			client.Disconnect()
			return nil, err
		}
		return &Storage{Repos: mongodb.NewRepositories(db), Close: client.Disconnect}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
