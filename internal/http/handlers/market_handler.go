package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "marketplace/internal/log"
	"marketplace/internal/services"
)

type MarketHandler struct {
	Market *services.MarketService
	Seed   *services.SeedService
}

// GET /api/
func (h *MarketHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Marketplace API"})
}

// GET /api/stats
func (h *MarketHandler) Stats(c *fiber.Ctx) error {
	st, err := h.Market.Stats(c.UserContext())
	if err != nil {
		return fail(c, "stats.fail", err)
	}
	return c.JSON(st)
}

// POST /api/init-sample-data appends the demo data set on every call.
func (h *MarketHandler) InitSampleData(c *fiber.Ctx) error {
	res, err := h.Seed.Seed(c.UserContext())
	if err != nil {
		return fail(c, "seed.fail", err)
	}
	applog.Audit(c, "seed.init", map[string]any{"groupings": res.Groupings, "items": res.Items})
	return c.JSON(fiber.Map{"message": "Sample data initialized successfully", "groupings": res.Groupings, "items": res.Items})
}
