package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

func domainFilterAll() repos.ItemFilter { return repos.ItemFilter{SortBy: "token_id", Limit: 100} }

func TestOwnerCreateAndItems(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	bio := "collector"
	o, err := e.owner.Create(ctx, services.NewOwnerInput{Username: "testuser", Email: "test@example.com", Bio: &bio})
	require.NoError(t, err)
	assert.True(t, domain.IsAddress(o.WalletAddress))
	require.NotNil(t, o.Bio)
	assert.Equal(t, "collector", *o.Bio)
	assert.Nil(t, o.ProfileImage)

	// duplicate usernames are allowed
	_, err = e.owner.Create(ctx, services.NewOwnerInput{Username: "testuser", Email: "test@example.com"})
	require.NoError(t, err)
	all, err := e.owner.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	it, err := e.catalog.CreateItem(ctx, itemIn("mine", "G", 1))
	require.NoError(t, err)
	held, err := e.owner.Items(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, held)

	_, err = e.transfer.Create(ctx, services.NewTransferInput{ItemID: it.ID, Buyer: o.WalletAddress, Seller: it.Owner, Price: amount(1)})
	require.NoError(t, err)
	held, err = e.owner.Items(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, it.ID, held[0].ID)

	got, err := e.owner.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.WalletAddress, got.WalletAddress)
	assert.Equal(t, o.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestOwnerNotFoundAndValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.owner.Get(ctx, "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = e.owner.Items(ctx, "nobody")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = e.owner.Create(ctx, services.NewOwnerInput{Username: "", Email: "a@b.io"})
	assert.ErrorIs(t, err, services.ErrInvalid)
	_, err = e.owner.Create(ctx, services.NewOwnerInput{Username: "ok", Email: "nope"})
	assert.ErrorIs(t, err, services.ErrInvalid)
}

func TestGroupingItemsByName(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	g, err := e.grouping.Create(ctx, services.NewGroupingInput{Name: "Mine", BannerImageURL: "https://img.test/banner.png"})
	require.NoError(t, err)
	require.NotNil(t, g.BannerImage)
	assert.Equal(t, "aW1n", *g.BannerImage)

	_, err = e.catalog.CreateItem(ctx, itemIn("one", "Mine", 1))
	require.NoError(t, err)
	_, err = e.catalog.CreateItem(ctx, itemIn("two", "Other", 1))
	require.NoError(t, err)

	members, err := e.grouping.Items(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "one", members[0].Name)

	_, err = e.grouping.Items(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = e.grouping.Create(ctx, services.NewGroupingInput{Name: "x", BannerImageURL: "javascript:alert(1)"})
	assert.ErrorIs(t, err, services.ErrInvalid)

	plain, err := e.grouping.Create(ctx, services.NewGroupingInput{Name: "NoBanner"})
	require.NoError(t, err)
	assert.Nil(t, plain.BannerImage)
}
