package services

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
)

// The stores below are satisfied by the repos package; tests may swap in
// their own implementations.

type ItemStore interface {
	Insert(ctx context.Context, it domain.Item) error
	Get(ctx context.Context, id string) (domain.Item, error)
	List(ctx context.Context, f repos.ItemFilter) ([]domain.Item, error)
	ByGrouping(ctx context.Context, name string) ([]domain.Item, error)
	ByOwner(ctx context.Context, owner string) ([]domain.Item, error)
	IncrementViews(ctx context.Context, id string) (bool, error)
	IncrementLikes(ctx context.Context, id string) (bool, error)
	MarkSold(ctx context.Context, id, buyer string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, s domain.ItemStatus) (int64, error)
	NextTokenID(ctx context.Context) (int64, error)
}

type OwnerStore interface {
	Insert(ctx context.Context, o domain.Owner) error
	Get(ctx context.Context, id string) (domain.Owner, error)
	List(ctx context.Context, limit int) ([]domain.Owner, error)
	Count(ctx context.Context) (int64, error)
}

type GroupingStore interface {
	Insert(ctx context.Context, g domain.Grouping) error
	Get(ctx context.Context, id string) (domain.Grouping, error)
	List(ctx context.Context, limit int) ([]domain.Grouping, error)
	UpdateStats(ctx context.Context, name string, floor, volume float64, count int64) error
	Count(ctx context.Context) (int64, error)
}

type TransferStore interface {
	Insert(ctx context.Context, t domain.TransferRecord) error
	Get(ctx context.Context, id string) (domain.TransferRecord, error)
	SetStatus(ctx context.Context, id string, s domain.TransferStatus) error
	ListLatest(ctx context.Context, limit int) ([]domain.TransferRecord, error)
	ByStatus(ctx context.Context, s domain.TransferStatus) ([]domain.TransferRecord, error)
	VolumeByStatus(ctx context.Context, s domain.TransferStatus) (float64, error)
}

var (
	_ ItemStore     = (*repos.ItemRepo)(nil)
	_ OwnerStore    = (*repos.OwnerRepo)(nil)
	_ GroupingStore = (*repos.GroupingRepo)(nil)
	_ TransferStore = (*repos.TransferRepo)(nil)
)
