package cost

import (
	"errors"

	"craft-planner/core/logger"
	"craft-planner/core/procurement"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for item cost queries.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the cost routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items/:id")
	group.Get("/closure", h.HandleClosure)
	group.Get("/needs", h.HandleNeeds)
	group.Get("/decision", h.HandleDecision)
	group.Get("/cost", h.HandleCost)
}

// HandleClosure lists the items reachable from an item.
// @Summary Item Closure
// @Description Lists the item and every ingredient reachable through its first recipe variant, root first.
// @Tags cost
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ClosureReport
// @Failure 400 {object} map[string]string "Invalid item id"
// @Failure 404 {object} map[string]string "Unknown item"
// @Router /items/{id}/closure [get]
func (h *Handler) HandleClosure(c *fiber.Ctx) error {
	id, err := itemParam(c)
	if err != nil {
		return h.fail(c, err)
	}
	report, err := h.service.Closure(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleNeeds returns the bill of materials of an item.
// @Summary Total Needs
// @Description Expands one unit of the item into the total quantity of every ingredient at every depth.
// @Tags cost
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} NeedsReport
// @Failure 400 {object} map[string]string "Invalid item id"
// @Failure 404 {object} map[string]string "Unknown item"
// @Router /items/{id}/needs [get]
func (h *Handler) HandleNeeds(c *fiber.Ctx) error {
	id, err := itemParam(c)
	if err != nil {
		return h.fail(c, err)
	}
	report, err := h.service.Needs(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleDecision returns the buy-or-craft decision for one unit of an item.
// @Summary Unit Decision
// @Description Returns whether one unit is cheaper bought or crafted at current market prices.
// @Tags cost
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} DecisionReport
// @Failure 400 {object} map[string]string "Invalid item id"
// @Failure 404 {object} map[string]string "Unknown item"
// @Failure 500 {object} map[string]string "Price lookup failed"
// @Router /items/{id}/decision [get]
func (h *Handler) HandleDecision(c *fiber.Ctx) error {
	id, err := itemParam(c)
	if err != nil {
		return h.fail(c, err)
	}
	report, err := h.service.Decision(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleCost returns the cost estimate of an item.
// @Summary Cost Estimate
// @Description Compares the item's market price with its craft cost and lists the cheapest purchases to craft it.
// @Tags cost
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} CostEstimate
// @Failure 400 {object} map[string]string "Invalid item id"
// @Failure 404 {object} map[string]string "Unknown item"
// @Failure 500 {object} map[string]string "Price lookup failed"
// @Router /items/{id}/cost [get]
func (h *Handler) HandleCost(c *fiber.Ctx) error {
	id, err := itemParam(c)
	if err != nil {
		return h.fail(c, err)
	}
	est, err := h.service.Estimate(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(est)
}

func itemParam(c *fiber.Ctx) (procurement.ItemID, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, ErrInvalidItem
	}
	return procurement.ItemID(id), nil
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidItem):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrItemNotFound):
		status = fiber.StatusNotFound
	default:
		logger.WithRayID(h.logger, c).Error("Cost request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
