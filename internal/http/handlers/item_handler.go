package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "marketplace/internal/log"
	"marketplace/internal/repos"
	"marketplace/internal/services"
	"marketplace/internal/validate"
)

type ItemHandler struct {
	Catalog *services.CatalogService
}

// GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	skip, limit, ok := validate.Paging(c.Query("skip"), c.Query("limit"))
	if !ok {
		return badRequest(c, "paging", "skip must be >= 0 and limit >= 1")
	}
	status, ok := validate.Status(c.Query("status"))
	if !ok {
		return badRequest(c, "status", "status must be one of listed, sold, unlisted")
	}
	q, ok := validate.Q(c.Query("search"))
	if !ok {
		return badRequest(c, "search", "search must be at most 100 printable characters")
	}
	sortBy, ok := validate.SortBy(c.Query("sort_by"), "created_at", repos.ItemSortColumns)
	if !ok {
		return badRequest(c, "sort_by", "unsupported sort_by")
	}
	desc, ok := validate.Order(c.Query("order"))
	if !ok {
		return badRequest(c, "order", "order must be asc or desc")
	}
	grouping, ok := validate.OptionalText(c.Query("grouping"), 100)
	if !ok {
		return badRequest(c, "grouping", "invalid grouping")
	}

	items, err := h.Catalog.ListItems(c.UserContext(), repos.ItemFilter{
		Grouping: grouping,
		Status:   status,
		Search:   q,
		SortBy:   sortBy,
		Desc:     desc,
		Offset:   skip,
		Limit:    limit,
	})
	if err != nil {
		return fail(c, "items.list.fail", err)
	}
	return c.JSON(items)
}

// GET /api/items/:id
func (h *ItemHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Item")
	}
	it, err := h.Catalog.GetItem(c.UserContext(), id)
	if err != nil {
		return fail(c, "items.get.fail", err)
	}
	return c.JSON(it)
}

// POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in services.NewItemInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	it, err := h.Catalog.CreateItem(c.UserContext(), in)
	if err != nil {
		return fail(c, "items.create.fail", err)
	}
	applog.Audit(c, "items.create", map[string]any{"item_id": it.ID, "grouping": it.Grouping, "token_id": it.TokenID})
	return c.Status(fiber.StatusCreated).JSON(it)
}

// POST /api/items/:id/like
func (h *ItemHandler) Like(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Item")
	}
	if err := h.Catalog.LikeItem(c.UserContext(), id); err != nil {
		return fail(c, "items.like.fail", err)
	}
	return c.JSON(fiber.Map{"message": "Item liked successfully"})
}
