package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"
)

type OwnerHandler struct {
	Owners *services.OwnerService
}

func (h *OwnerHandler) List(c *fiber.Ctx) error {
	owners, err := h.Owners.List(c.UserContext())
	if err != nil {
		return fail(c, "owners.list.fail", err)
	}
	return c.JSON(owners)
}

func (h *OwnerHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Owner")
	}
	o, err := h.Owners.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "owners.get.fail", err)
	}
	return c.JSON(o)
}

func (h *OwnerHandler) Create(c *fiber.Ctx) error {
	var in services.NewOwnerInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	o, err := h.Owners.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "owners.create.fail", err)
	}
	applog.Audit(c, "owners.create", map[string]any{"owner_id": o.ID})
	return c.Status(fiber.StatusCreated).JSON(o)
}

// GET /api/owners/:id/items
func (h *OwnerHandler) Items(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Owner")
	}
	items, err := h.Owners.Items(c.UserContext(), id)
	if err != nil {
		return fail(c, "owners.items.fail", err)
	}
	return c.JSON(items)
}
