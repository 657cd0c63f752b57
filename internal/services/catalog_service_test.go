package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

func TestCreateItemAssignsSequentialTokens(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.catalog.CreateItem(ctx, itemIn("a", "G", 1))
	require.NoError(t, err)
	b, err := e.catalog.CreateItem(ctx, itemIn("b", "G", 1))
	require.NoError(t, err)

	assert.EqualValues(t, 1, a.TokenID)
	assert.EqualValues(t, 2, b.TokenID)
	assert.Equal(t, "aW1n", a.Image)
	assert.Equal(t, domain.ItemListed, a.Status)
	assert.True(t, domain.IsAddress(a.Owner))
	assert.True(t, domain.IsAddress(a.Creator))
	assert.NotEqual(t, a.Owner, a.Creator)
}

func TestCreateItemRejectsBadInput(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	bad := []services.NewItemInput{
		{Description: "d", ImageURL: "https://x.io/a.png", Price: amount(1), Grouping: "G"},
		{Name: "n", ImageURL: "not-a-url", Price: amount(1), Grouping: "G"},
		{Name: "n", ImageURL: "https://x.io/a.png", Price: amount(-1), Grouping: "G"},
		{Name: "n", ImageURL: "https://x.io/a.png", Price: amount(1)},
		{Name: "n", ImageURL: "https://x.io/a.png", Price: amount(1), Grouping: "G", Traits: []domain.Trait{{Value: "v"}}},
		{Name: "n", ImageURL: "https://x.io/a.png", Grouping: "G"},
	}
	for i, in := range bad {
		_, err := e.catalog.CreateItem(ctx, in)
		assert.ErrorIs(t, err, services.ErrInvalid, "case %d", i)
	}

	n, err := e.items.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetItemCountsViews(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	it, err := e.catalog.CreateItem(ctx, itemIn("viewed", "G", 1))
	require.NoError(t, err)

	got, err := e.catalog.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Views)
	got, err = e.catalog.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Views)

	_, err = e.catalog.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestLikeItem(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	it, err := e.catalog.CreateItem(ctx, itemIn("liked", "G", 1))
	require.NoError(t, err)

	const n = 7
	for i := 0; i < n; i++ {
		require.NoError(t, e.catalog.LikeItem(ctx, it.ID))
	}
	got, err := e.items.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, got.Likes)

	err = e.catalog.LikeItem(ctx, "nope")
	assert.True(t, errors.Is(err, services.ErrNotFound))
	got, _ = e.items.Get(ctx, it.ID)
	assert.EqualValues(t, n, got.Likes)
}

func TestListItemsSearchIsCaseInsensitive(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.seed.Seed(ctx)
	require.NoError(t, err)

	for _, q := range []string{"purple", "WAVES", "wAvEs"} {
		got, err := e.catalog.ListItems(ctx, repos.ItemFilter{Search: q})
		require.NoError(t, err)
		names := make([]string, 0, len(got))
		for _, it := range got {
			names = append(names, it.Name)
		}
		assert.Contains(t, names, "Purple Waves", "query %q", q)
	}

	// grouping name is searched too
	got, err := e.catalog.ListItems(ctx, repos.ItemFilter{Search: "pixelpunks"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// wildcards are literal
	got, err = e.catalog.ListItems(ctx, repos.ItemFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListItemsSortAndFilter(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.seed.Seed(ctx)
	require.NoError(t, err)

	got, err := e.catalog.ListItems(ctx, repos.ItemFilter{SortBy: "price", Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 8)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}

	got, err = e.catalog.ListItems(ctx, repos.ItemFilter{SortBy: "price", Desc: true, Limit: 100})
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Price, got[i].Price)
	}

	got, err = e.catalog.ListItems(ctx, repos.ItemFilter{Grouping: "Abstract3D", Limit: 100})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	page, err := e.catalog.ListItems(ctx, repos.ItemFilter{SortBy: "token_id", Offset: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.EqualValues(t, 3, page[0].TokenID)

	sold := page[0]
	_, err = e.transfer.Create(ctx, services.NewTransferInput{ItemID: sold.ID, Buyer: "b", Seller: "s", Price: amount(1)})
	require.NoError(t, err)
	got, err = e.catalog.ListItems(ctx, repos.ItemFilter{Status: domain.ItemSold})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sold.ID, got[0].ID)
}
