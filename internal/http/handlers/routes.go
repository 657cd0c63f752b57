package handlers

import "github.com/gofiber/fiber/v2"

// Mount registers the API under r. seedGuard, when non-nil, runs ahead of
// the sample-data route (the server passes a rate limiter).
func Mount(r fiber.Router, d *Deps, seedGuard fiber.Handler) {
	api := r.Group("/api")
	api.Get("/", d.MarketHandler.Root)

	api.Get("/items", d.ItemHandler.List)
	api.Post("/items", d.ItemHandler.Create)
	api.Get("/items/:id", d.ItemHandler.Detail)
	api.Post("/items/:id/like", d.ItemHandler.Like)

	api.Get("/owners", d.OwnerHandler.List)
	api.Post("/owners", d.OwnerHandler.Create)
	api.Get("/owners/:id", d.OwnerHandler.Detail)
	api.Get("/owners/:id/items", d.OwnerHandler.Items)

	api.Get("/groupings", d.GroupingHandler.List)
	api.Post("/groupings", d.GroupingHandler.Create)
	api.Get("/groupings/:id", d.GroupingHandler.Detail)
	api.Get("/groupings/:id/items", d.GroupingHandler.Items)

	api.Get("/transfers", d.TransferHandler.List)
	api.Post("/transfers", d.TransferHandler.Create)

	api.Get("/stats", d.MarketHandler.Stats)
	if seedGuard != nil {
		api.Post("/init-sample-data", seedGuard, d.MarketHandler.InitSampleData)
	} else {
		api.Post("/init-sample-data", d.MarketHandler.InitSampleData)
	}
}
