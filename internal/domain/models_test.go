package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/domain"
)

func TestNewItemDefaults(t *testing.T) {
	it := domain.NewItem(domain.Item{Name: "A", Price: 2})
	assert.NotEmpty(t, it.ID)
	assert.True(t, domain.IsAddress(it.Owner), "owner %q", it.Owner)
	assert.True(t, domain.IsAddress(it.Creator))
	assert.True(t, domain.IsAddress(it.ContractAddress))
	assert.Equal(t, domain.ItemListed, it.Status)
	assert.NotNil(t, it.Traits)
	assert.False(t, it.CreatedAt.IsZero())

	other := domain.NewItem(domain.Item{Name: "A"})
	assert.NotEqual(t, it.ID, other.ID)
}

func TestNewItemKeepsExplicitFields(t *testing.T) {
	at := domain.Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	it := domain.NewItem(domain.Item{ID: "fixed", Owner: "0xabc", Status: domain.ItemSold, CreatedAt: at})
	assert.Equal(t, "fixed", it.ID)
	assert.Equal(t, "0xabc", it.Owner)
	assert.Equal(t, domain.ItemSold, it.Status)
	assert.True(t, it.CreatedAt.Equal(at.Time))
}

func TestNewOwnerAndGrouping(t *testing.T) {
	o := domain.NewOwner(domain.Owner{Username: "u", Email: "u@x.io"})
	assert.True(t, domain.IsAddress(o.WalletAddress))
	assert.False(t, o.Verified)

	g := domain.NewGrouping(domain.Grouping{Name: "G1"})
	assert.NotEmpty(t, g.ID)
	assert.Zero(t, g.FloorPrice)
	assert.Zero(t, g.Volume)
	assert.Zero(t, g.ItemsCount)
}

func TestNewTransferIsPending(t *testing.T) {
	tr := domain.NewTransfer(domain.TransferRecord{ItemID: "i", Buyer: "b", Seller: "s", Price: 1})
	assert.Equal(t, domain.TransferPending, tr.Status)
	assert.True(t, strings.HasPrefix(tr.TransactionHash, "0x"))
	assert.Len(t, tr.TransactionHash, 66)

	again := domain.NewTransfer(domain.TransferRecord{ItemID: "i", Buyer: "b", Seller: "s", Price: 1})
	assert.NotEqual(t, tr.TransactionHash, again.TransactionHash)
}

func TestTimestampRoundTrip(t *testing.T) {
	in := domain.Timestamp{Time: time.Date(2025, 6, 1, 12, 0, 0, 1500, time.UTC)}
	v, err := in.Value()
	require.NoError(t, err)

	var out domain.Timestamp
	require.NoError(t, out.Scan(v))
	assert.True(t, in.Equal(out.Time))

	require.NoError(t, out.Scan("2025-06-01T12:00:00Z"))
	assert.Equal(t, 2025, out.Year())
	assert.Error(t, out.Scan(42))
}

func TestTimestampTextSortsChronologically(t *testing.T) {
	a := domain.Timestamp{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := domain.Timestamp{Time: a.Add(1500 * time.Millisecond)}
	va, _ := a.Value()
	vb, _ := b.Value()
	assert.Less(t, va.(string), vb.(string))
}

func TestTraitsScan(t *testing.T) {
	var ts domain.Traits
	require.NoError(t, ts.Scan(`[{"trait_type":"Rarity","value":"Rare"}]`))
	require.Len(t, ts, 1)
	assert.Equal(t, "Rare", ts[0].Value)

	require.NoError(t, ts.Scan(nil))
	assert.NotNil(t, ts)
	assert.Empty(t, ts)

	v, err := domain.Traits(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestItemStatusValid(t *testing.T) {
	assert.True(t, domain.ItemListed.Valid())
	assert.True(t, domain.ItemUnlisted.Valid())
	assert.False(t, domain.ItemStatus("burned").Valid())
}
