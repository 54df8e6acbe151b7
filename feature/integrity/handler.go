package integrity

import (
	"craft-planner/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/gamedata", h.HandleGameDataCheck)
	group.Get("/server", h.HandleServerCheck)
	group.Post("/reload", h.HandleReload)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, GameData, Server).
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]any)

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = fiber.Map{"status": "ok", "missing": missing}
	}

	if gd, err := h.service.CheckGameData(ctx); err != nil {
		report["gamedata"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["gamedata"] = gd
	}

	if srv, err := h.service.CheckServer(); err != nil {
		report["server"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srv
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the required folder structure exists in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix", false)

	missing, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			if err := h.service.FixStructure(c.UserContext(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleGameDataCheck checks the recipe and item documents.
// @Summary Check GameData
// @Description Verifies that the recipe and item documents exist, decode, and name every recipe item.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.GameDataReport "GameData Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/gamedata [get]
func (h *Handler) HandleGameDataCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckGameData(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("GameData check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks if the owned stock tables match the expected models.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckServer()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleReload drops cached gamedata and prices.
// @Summary Reload Caches
// @Description Drops the cached recipe graph, item index and market snapshots.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /integrity/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "reloaded", "caches": h.service.Reload()})
}
