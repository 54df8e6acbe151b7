package tracker

import (
	"craft-planner/core/gamedata"
	"craft-planner/core/inventory"
	"craft-planner/core/market"
	"craft-planner/core/procurement"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new tracker feature.
func NewFeature(source *gamedata.Source, prices market.PriceOracle, store *inventory.Store, cfg procurement.Config, logger *zap.Logger) *Feature {
	svc := NewService(source, prices, store, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tracker"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}
