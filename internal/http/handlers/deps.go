package handlers

import (
	"github.com/jmoiron/sqlx"

	"marketplace/internal/media"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

type Deps struct {
	ItemHandler     *ItemHandler
	OwnerHandler    *OwnerHandler
	GroupingHandler *GroupingHandler
	TransferHandler *TransferHandler
	MarketHandler   *MarketHandler
}

func NewDeps(db *sqlx.DB, images media.Fetcher) *Deps {
	itemRepo := repos.NewItemRepo(db)
	ownerRepo := repos.NewOwnerRepo(db)
	groupingRepo := repos.NewGroupingRepo(db)
	transferRepo := repos.NewTransferRepo(db)

	aggSvc := services.NewAggregateService(itemRepo, groupingRepo, transferRepo)
	catalogSvc := services.NewCatalogService(itemRepo, images, aggSvc)
	ownerSvc := services.NewOwnerService(ownerRepo, itemRepo)
	groupingSvc := services.NewGroupingService(groupingRepo, itemRepo, images)
	transferSvc := services.NewTransferService(transferRepo, itemRepo)
	marketSvc := services.NewMarketService(itemRepo, ownerRepo, groupingRepo, transferRepo)
	seedSvc := services.NewSeedService(itemRepo, groupingRepo, images, aggSvc)

	return &Deps{
		ItemHandler:     &ItemHandler{Catalog: catalogSvc},
		OwnerHandler:    &OwnerHandler{Owners: ownerSvc},
		GroupingHandler: &GroupingHandler{Groupings: groupingSvc},
		TransferHandler: &TransferHandler{Transfers: transferSvc},
		MarketHandler:   &MarketHandler{Market: marketSvc, Seed: seedSvc},
	}
}
