package services

import (
	"context"
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/validate"
)

type TransferService struct {
	Transfers TransferStore
	Items     ItemStore
}

func NewTransferService(transfers TransferStore, items ItemStore) *TransferService {
	return &TransferService{Transfers: transfers, Items: items}
}

type NewTransferInput struct {
	ItemID string  `json:"item_id"`
	Buyer  string  `json:"buyer"`
	Seller string  `json:"seller"`
	Price  *float64 `json:"price"`
}

func (s *TransferService) List(ctx context.Context) ([]domain.TransferRecord, error) {
	return s.Transfers.ListLatest(ctx, 1000)
}

// Create records a sale: a pending record is stored, the item moves to the
// buyer as sold, and the record is advanced to completed straight away.
// There is no settlement step, so the failed status is never produced here.
// The stored record is returned. Grouping stats are not recomputed.
func (s *TransferService) Create(ctx context.Context, in NewTransferInput) (domain.TransferRecord, error) {
	itemID, ok := validate.ID(in.ItemID)
	if !ok {
		return domain.TransferRecord{}, invalid("item_id is required")
	}
	buyer, ok := validate.Text(in.Buyer, 128)
	if !ok {
		return domain.TransferRecord{}, invalid("buyer is required")
	}
	seller, ok := validate.Text(in.Seller, 128)
	if !ok {
		return domain.TransferRecord{}, invalid("seller is required")
	}
	if in.Price == nil {
		return domain.TransferRecord{}, invalid("price is required")
	}
	if !validate.Price(*in.Price) {
		return domain.TransferRecord{}, invalid("price must be a non-negative number")
	}
	if _, err := s.Items.Get(ctx, itemID); err != nil {
		return domain.TransferRecord{}, lookup("Item", err)
	}

	t := domain.NewTransfer(domain.TransferRecord{ItemID: itemID, Buyer: buyer, Seller: seller, Price: *in.Price})
	if err := s.Transfers.Insert(ctx, t); err != nil {
		return domain.TransferRecord{}, err
	}
	moved, err := s.Items.MarkSold(ctx, itemID, buyer)
	if err != nil {
		return t, fmt.Errorf("move item %s: %w", itemID, err)
	}
	if !moved {
		return t, notFound("Item")
	}
	if err := s.Transfers.SetStatus(ctx, t.ID, domain.TransferCompleted); err != nil {
		return t, fmt.Errorf("complete transfer %s: %w", t.ID, err)
	}
	done, err := s.Transfers.Get(ctx, t.ID)
	if err != nil {
		return t, fmt.Errorf("reload transfer %s: %w", t.ID, err)
	}
	return done, nil
}
