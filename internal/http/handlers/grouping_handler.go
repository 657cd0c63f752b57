package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"
)

type GroupingHandler struct {
	Groupings *services.GroupingService
}

func (h *GroupingHandler) List(c *fiber.Ctx) error {
	gs, err := h.Groupings.List(c.UserContext())
	if err != nil {
		return fail(c, "groupings.list.fail", err)
	}
	return c.JSON(gs)
}

func (h *GroupingHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Grouping")
	}
	g, err := h.Groupings.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "groupings.get.fail", err)
	}
	return c.JSON(g)
}

func (h *GroupingHandler) Create(c *fiber.Ctx) error {
	var in services.NewGroupingInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	g, err := h.Groupings.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "groupings.create.fail", err)
	}
	applog.Audit(c, "groupings.create", map[string]any{"grouping_id": g.ID, "name": g.Name})
	return c.Status(fiber.StatusCreated).JSON(g)
}

// GET /api/groupings/:id/items
func (h *GroupingHandler) Items(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Grouping")
	}
	items, err := h.Groupings.Items(c.UserContext(), id)
	if err != nil {
		return fail(c, "groupings.items.fail", err)
	}
	return c.JSON(items)
}
