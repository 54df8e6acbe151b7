package cmd

import (
	"fmt"
	"strconv"

	"craft-planner/core/config"
	"craft-planner/core/database"
	"craft-planner/core/gamedata"
	"craft-planner/core/inventory"
	"craft-planner/core/logger"
	"craft-planner/core/market"
	"craft-planner/core/procurement"
	"craft-planner/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is the wiring shared by the server and the CLI commands.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
	owned  *inventory.Store
	source *gamedata.Source
	prices *market.SnapshotCache
}

// bootstrap loads configuration and builds every dependency. The database is optional unless
// requireDB is set; without it owned stock is treated as empty.
func bootstrap(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed, owned stock disabled", zap.Error(err))
	} else {
		db = conn
		logg = logg.With(zap.String("database", cfg.Database.Driver))
	}

	oracle := market.NewUniversalisClient(cfg.Market, nil, logg)

	return &runtime{
		cfg:    cfg,
		logger: logg,
		client: client,
		db:     db,
		owned:  inventory.NewStore(db),
		source: gamedata.NewSource(client, cfg.Storage, cfg.Storage.CacheTTL(), logg),
		prices: market.NewSnapshotCache(oracle, cfg.Market.CacheTTL()),
	}, nil
}

// migrate creates the owned stock table when a database is attached.
func (r *runtime) migrate() error {
	if !r.owned.Available() {
		return nil
	}
	return r.owned.Migrate()
}

// reloads returns the cache drops exposed through the integrity feature.
func (r *runtime) reloads() []func() {
	return []func(){r.source.Invalidate, r.prices.InvalidateAll}
}

func parseItemID(arg string) (procurement.ItemID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return procurement.ItemID(id), nil
}
