package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"marketplace/internal/domain"
)

type MarketService struct {
	Items     ItemStore
	Owners    OwnerStore
	Groupings GroupingStore
	Transfers TransferStore
}

func NewMarketService(items ItemStore, owners OwnerStore, groupings GroupingStore, transfers TransferStore) *MarketService {
	return &MarketService{Items: items, Owners: owners, Groupings: groupings, Transfers: transfers}
}

// Stats counts the collections and sums completed transfer volume. The
// figures are read independently and need not form one snapshot.
func (s *MarketService) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { st.TotalItems, err = s.Items.Count(gctx); return })
	g.Go(func() (err error) { st.TotalOwners, err = s.Owners.Count(gctx); return })
	g.Go(func() (err error) { st.TotalGroupings, err = s.Groupings.Count(gctx); return })
	g.Go(func() (err error) {
		st.ActiveListings, err = s.Items.CountByStatus(gctx, domain.ItemListed)
		return
	})
	g.Go(func() (err error) {
		st.TotalVolume, err = s.Transfers.VolumeByStatus(gctx, domain.TransferCompleted)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}
	return st, nil
}
