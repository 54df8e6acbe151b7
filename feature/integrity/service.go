package integrity

import (
	"context"

	"craft-planner/core/storage"
	"craft-planner/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	cfg     storage.Config
	logger  *zap.Logger
	db      *gorm.DB
	reloads []func()
}

// NewService creates a new integrity service. db may be nil when no database is configured.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

// OnReload registers callbacks that drop cached gamedata and prices.
func (s *Service) OnReload(fns ...func()) *Service {
	s.reloads = append(s.reloads, fns...)
	return s
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.logger, missing)
}

// CheckGameData verifies the recipe and item documents.
func (s *Service) CheckGameData(ctx context.Context) (*checks.GameDataReport, error) {
	return checks.CheckGameData(ctx, s.client, s.cfg.Bucket, s.cfg.RecipeObject, s.cfg.ItemObject)
}

// CheckServer compares the owned stock tables with their models.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}

// Reload drops every cache so the next request reads fresh gamedata and prices.
func (s *Service) Reload() int {
	for _, fn := range s.reloads {
		fn()
	}
	s.logger.Info("Caches dropped", zap.Int("count", len(s.reloads)))
	return len(s.reloads)
}
