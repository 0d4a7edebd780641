// Command seed forces first-read seeding of the demo users, collections,
// and sales so a fresh deployment starts with data already in the store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ensigotrace/ensigotrace-backend/internal/auth"
	"github.com/ensigotrace/ensigotrace-backend/internal/collections"
	"github.com/ensigotrace/ensigotrace-backend/internal/sales"
	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/ensigotrace/ensigotrace-backend/pkg/logger"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	kv, err := openStore(cfg.Store)
	if err != nil {
		logg.Error(ctx, "failed to open store", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logg.Error(ctx, "error closing store", err)
		}
	}()

	// A login attempt with bad credentials still reads (and therefore
	// seeds) the user list.
	authRepo := auth.NewRepository(kv, nil, nil)
	if _, err := authRepo.Login(ctx, auth.LoginRequest{Email: "seed@invalid", Password: ""}); err == nil {
		logg.Warn(ctx, "unexpected login success during seeding")
	}

	collectionsRepo := collections.NewRepository(kv, nil, nil)
	collectionList, err := collectionsRepo.GetAll(ctx)
	if err != nil {
		logg.Error(ctx, "failed to seed collections", err)
		os.Exit(1)
	}

	salesRepo := sales.NewRepository(kv, nil, nil)
	saleList, err := salesRepo.GetAll(ctx, "")
	if err != nil {
		logg.Error(ctx, "failed to seed sales", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"store_driver": cfg.Store.NormalizedDriver(),
		"store_path":   cfg.Store.Path,
		"users":        len(auth.DefaultUsers()),
		"collections":  len(collectionList),
		"sales":        len(saleList),
	})
	logg.Info(ctx, "store seeded")
	fmt.Printf("seeded %d collections and %d sales into %s\n", len(collectionList), len(saleList), cfg.Store.Path)
}

func openStore(cfg config.StoreConfig) (store.KV, error) {
	switch cfg.NormalizedDriver() {
	case config.StoreDriverSQLite:
		return store.NewSQLite(cfg.Path)
	default:
		return store.NewBadger(cfg.Path)
	}
}
