package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "marketplace/internal/log"
	"marketplace/internal/services"
)

type TransferHandler struct {
	Transfers *services.TransferService
}

func (h *TransferHandler) List(c *fiber.Ctx) error {
	ts, err := h.Transfers.List(c.UserContext())
	if err != nil {
		return fail(c, "transfers.list.fail", err)
	}
	return c.JSON(ts)
}

func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in services.NewTransferInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	t, err := h.Transfers.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "transfers.create.fail", err)
	}
	applog.Audit(c, "transfers.create", map[string]any{
		"transfer_id": t.ID, "item_id": t.ItemID, "price": t.Price, "status": t.Status,
	})
	return c.Status(fiber.StatusCreated).JSON(t)
}
