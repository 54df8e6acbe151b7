package tracker

import (
	"errors"

	"craft-planner/core/inventory"
	"craft-planner/core/logger"
	"craft-planner/core/procurement"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the materials tracker.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the tracker routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tracker/:root")
	group.Get("/", h.HandleTracker)
	group.Get("/plan", h.HandlePlan)
	group.Put("/items/:item", h.HandleSetOwned)
	group.Delete("/", h.HandleClear)
}

// OwnedRequest is the body of an owned stock update.
type OwnedRequest struct {
	Quantity *float64 `json:"quantity"`
}

// HandleTracker returns the material table of a root.
// @Summary Materials Tracker
// @Description Lists every material of the root with needed, owned and remaining quantities, plus what is left to buy for one unit.
// @Tags tracker
// @Security ApiKeyAuth
// @Produce json
// @Param root path int true "Root item ID"
// @Success 200 {object} TrackerReport
// @Failure 400 {object} map[string]string "Invalid item id"
// @Failure 404 {object} map[string]string "Root has no recipe"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /tracker/{root} [get]
func (h *Handler) HandleTracker(c *fiber.Ctx) error {
	root, err := idParam(c, "root")
	if err != nil {
		return h.fail(c, err)
	}
	report, err := h.service.Tracker(c.UserContext(), root)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandlePlan returns the purchase plan of a root.
// @Summary Purchase Plan
// @Description Plans the purchases to craft qty units of the root, consuming owned stock unless ignore_owned is set.
// @Tags tracker
// @Security ApiKeyAuth
// @Produce json
// @Param root path int true "Root item ID"
// @Param qty query int false "Units to craft" default(1)
// @Param ignore_owned query bool false "Plan as if nothing is owned"
// @Success 200 {object} PlanReport
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Root has no recipe"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /tracker/{root}/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	root, err := idParam(c, "root")
	if err != nil {
		return h.fail(c, err)
	}
	report, err := h.service.Plan(c.UserContext(), root, c.QueryInt("qty", 1), c.QueryBool("ignore_owned", false))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleSetOwned records owned stock of a material.
// @Summary Set Owned Stock
// @Description Records how many units of a material are owned for the root. Fractions are floored, negatives and zero remove the entry.
// @Tags tracker
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param root path int true "Root item ID"
// @Param item path int true "Material item ID"
// @Param body body OwnedRequest true "Owned quantity"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Root has no recipe"
// @Failure 503 {object} map[string]string "No database configured"
// @Router /tracker/{root}/items/{item} [put]
func (h *Handler) HandleSetOwned(c *fiber.Ctx) error {
	root, err := idParam(c, "root")
	if err != nil {
		return h.fail(c, err)
	}
	item, err := idParam(c, "item")
	if err != nil {
		return h.fail(c, err)
	}

	var req OwnedRequest
	if err := c.BodyParser(&req); err != nil || req.Quantity == nil {
		return h.fail(c, ErrInvalidQuantity)
	}

	n, err := h.service.SetOwned(c.UserContext(), root, item, *req.Quantity)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"root": root, "item": item, "quantity": n})
}

// HandleClear forgets owned stock of a root.
// @Summary Clear Owned Stock
// @Tags tracker
// @Security ApiKeyAuth
// @Param root path int true "Root item ID"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid item id"
// @Failure 503 {object} map[string]string "No database configured"
// @Router /tracker/{root} [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	root, err := idParam(c, "root")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.service.ClearOwned(c.UserContext(), root); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func idParam(c *fiber.Ctx, key string) (procurement.ItemID, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, ErrInvalidItem
	}
	return procurement.ItemID(id), nil
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidItem), errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrNotMaterial), errors.Is(err, inventory.ErrInvalidID):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotCraftable):
		status = fiber.StatusNotFound
	case errors.Is(err, inventory.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	default:
		logger.WithRayID(h.logger, c).Error("Tracker request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
