package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"marketplace/internal/media"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

type env struct {
	db        *sqlx.DB
	items     *repos.ItemRepo
	owners    *repos.OwnerRepo
	groupings *repos.GroupingRepo
	transfers *repos.TransferRepo

	agg      *services.AggregateService
	catalog  *services.CatalogService
	owner    *services.OwnerService
	grouping *services.GroupingService
	transfer *services.TransferService
	market   *services.MarketService
	seed     *services.SeedService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	e := &env{
		db:        db,
		items:     repos.NewItemRepo(db),
		owners:    repos.NewOwnerRepo(db),
		groupings: repos.NewGroupingRepo(db),
		transfers: repos.NewTransferRepo(db),
	}
	img := media.Static{Encoded: "aW1n"}
	e.agg = services.NewAggregateService(e.items, e.groupings, e.transfers)
	e.catalog = services.NewCatalogService(e.items, img, e.agg)
	e.owner = services.NewOwnerService(e.owners, e.items)
	e.grouping = services.NewGroupingService(e.groupings, e.items, img)
	e.transfer = services.NewTransferService(e.transfers, e.items)
	e.market = services.NewMarketService(e.items, e.owners, e.groupings, e.transfers)
	e.seed = services.NewSeedService(e.items, e.groupings, img, e.agg)
	return e
}

func itemIn(name, grouping string, price float64) services.NewItemInput {
	return services.NewItemInput{
		Name:        name,
		Description: name + " description",
		ImageURL:    "https://img.test/" + name + ".png",
		Price:       &price,
		Grouping:    grouping,
	}
}

func amount(v float64) *float64 { return &v }
