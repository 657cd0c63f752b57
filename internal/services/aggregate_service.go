package services

import (
	"context"
	"fmt"

	"marketplace/internal/domain"
)

// AggregateService recomputes a grouping's derived stats from its member
// items and completed transfers. It is a full scan per call; concurrent calls
// for one grouping are not serialised and the last writer wins.
type AggregateService struct {
	Items     ItemStore
	Groupings GroupingStore
	Transfers TransferStore
}

func NewAggregateService(items ItemStore, groupings GroupingStore, transfers TransferStore) *AggregateService {
	return &AggregateService{Items: items, Groupings: groupings, Transfers: transfers}
}

// GroupingStats is what Recompute wrote, or would have written.
type GroupingStats struct {
	FloorPrice float64
	Volume     float64
	ItemsCount int64
}

// Recompute refreshes floor price, volume and item count for the grouping
// named name. A grouping with no member items is left untouched and
// updated reports false.
func (s *AggregateService) Recompute(ctx context.Context, name string) (st GroupingStats, updated bool, err error) {
	items, err := s.Items.ByGrouping(ctx, name)
	if err != nil {
		return st, false, fmt.Errorf("load items for %q: %w", name, err)
	}
	if len(items) == 0 {
		return st, false, nil
	}

	members := make(map[string]struct{}, len(items))
	floorSet := false
	for _, it := range items {
		members[it.ID] = struct{}{}
		if it.Status != domain.ItemListed {
			continue
		}
		if !floorSet || it.Price < st.FloorPrice {
			st.FloorPrice = it.Price
			floorSet = true
		}
	}

	done, err := s.Transfers.ByStatus(ctx, domain.TransferCompleted)
	if err != nil {
		return st, false, fmt.Errorf("load completed transfers: %w", err)
	}
	for _, t := range done {
		if _, ok := members[t.ItemID]; ok {
			st.Volume += t.Price
		}
	}
	st.ItemsCount = int64(len(items))

	if err := s.Groupings.UpdateStats(ctx, name, st.FloorPrice, st.Volume, st.ItemsCount); err != nil {
		return st, false, fmt.Errorf("write stats for %q: %w", name, err)
	}
	return st, true, nil
}
