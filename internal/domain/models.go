package domain

import (
	"time"

	"github.com/google/uuid"
)

type ItemStatus string

const (
	ItemListed   ItemStatus = "listed"
	ItemSold     ItemStatus = "sold"
	ItemUnlisted ItemStatus = "unlisted"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemListed, ItemSold, ItemUnlisted:
		return true
	}
	return false
}

type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferCompleted TransferStatus = "completed"
	TransferFailed    TransferStatus = "failed"
)

type Trait struct {
	TraitType string   `json:"trait_type"`
	Value     string   `json:"value"`
	Rarity    *float64 `json:"rarity,omitempty"`
}

type Item struct {
	ID              string     `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Description     string     `db:"description" json:"description"`
	Image           string     `db:"image" json:"image"` // base64, empty when the fetch failed
	Price           float64    `db:"price" json:"price"`
	Owner           string     `db:"owner" json:"owner"`
	Creator         string     `db:"creator" json:"creator"`
	Grouping        string     `db:"grouping_name" json:"grouping"` // grouping name, not id
	Traits          Traits     `db:"traits_json" json:"traits"`
	TokenID         int64      `db:"token_id" json:"token_id"`
	ContractAddress string     `db:"contract_address" json:"contract_address"`
	Status          ItemStatus `db:"status" json:"status"`
	Likes           int64      `db:"likes" json:"likes"`
	Views           int64      `db:"views" json:"views"`
	CreatedAt       Timestamp  `db:"created_at" json:"created_at"`
}

type Owner struct {
	ID            string    `db:"id" json:"id"`
	Username      string    `db:"username" json:"username"`
	Email         string    `db:"email" json:"email"`
	WalletAddress string    `db:"wallet_address" json:"wallet_address"`
	ProfileImage  *string   `db:"profile_image" json:"profile_image"`
	Bio           *string   `db:"bio" json:"bio"`
	Verified      bool      `db:"verified" json:"verified"`
	CreatedAt     Timestamp `db:"created_at" json:"created_at"`
}

type Grouping struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Creator     string    `db:"creator" json:"creator"`
	BannerImage *string   `db:"banner_image" json:"banner_image"`
	FloorPrice  float64   `db:"floor_price" json:"floor_price"`
	Volume      float64   `db:"volume" json:"volume"`
	ItemsCount  int64     `db:"items_count" json:"items_count"`
	CreatedAt   Timestamp `db:"created_at" json:"created_at"`
}

type TransferRecord struct {
	ID              string         `db:"id" json:"id"`
	ItemID          string         `db:"item_id" json:"item_id"`
	Buyer           string         `db:"buyer" json:"buyer"`
	Seller          string         `db:"seller" json:"seller"`
	Price           float64        `db:"price" json:"price"`
	TransactionHash string         `db:"transaction_hash" json:"transaction_hash"`
	Timestamp       Timestamp      `db:"timestamp" json:"timestamp"`
	Status          TransferStatus `db:"status" json:"status"`
}

// Stats is the marketplace-wide summary served by /stats.
type Stats struct {
	TotalItems     int64   `json:"total_items"`
	TotalOwners    int64   `json:"total_owners"`
	TotalGroupings int64   `json:"total_groupings"`
	TotalVolume    float64 `json:"total_volume"`
	ActiveListings int64   `json:"active_listings"`
}

func now() Timestamp { return Timestamp{Time: time.Now().UTC()} }

// NewItem fills identifier, addresses, status, traits and creation time when
// they are unset.
func NewItem(i Item) Item {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Owner == "" {
		i.Owner = NewAddress()
	}
	if i.Creator == "" {
		i.Creator = NewAddress()
	}
	if i.ContractAddress == "" {
		i.ContractAddress = NewAddress()
	}
	if i.Status == "" {
		i.Status = ItemListed
	}
	if i.Traits == nil {
		i.Traits = Traits{}
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now()
	}
	return i
}

func NewOwner(o Owner) Owner {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.WalletAddress == "" {
		o.WalletAddress = NewAddress()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now()
	}
	return o
}

func NewGrouping(g Grouping) Grouping {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Creator == "" {
		g.Creator = NewAddress()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now()
	}
	return g
}

// NewTransfer returns a pending record with a synthetic hash.
func NewTransfer(t TransferRecord) TransferRecord {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = TransferPending
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = now()
	}
	if t.TransactionHash == "" {
		t.TransactionHash = NewTransferHash(t)
	}
	return t
}
