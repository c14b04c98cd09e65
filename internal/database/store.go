package database

import (
	"context"
	"log"
	"time"

	"github.com/toruktube/revive-app-sub001/internal/config"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

// OpenStore builds the working Store from Postgres when DB_URL is set and
// from the demo seed otherwise. The returned func releases the pool.
func OpenStore(ctx context.Context, cfg *config.Config, now time.Time) (*repository.Store, func(), error) {
	if !cfg.UsesDatabase() {
		snapshot := repository.Snapshot{}
		if cfg.SeedDemoData {
			snapshot = repository.Seed(now)
			log.Println("Using demo seed data")
		}
		store, err := repository.Open(ctx, repository.StaticLoader{Snapshot: snapshot})
		return store, func() {}, err
	}

	pool, err := Connect(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	store, err := repository.Open(ctx, repository.NewPostgresLoader(pool))
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return store, pool.Close, nil
}
