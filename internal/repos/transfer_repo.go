package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"marketplace/internal/domain"
)

type TransferRepo struct{ db *sqlx.DB }

func NewTransferRepo(db *sqlx.DB) *TransferRepo { return &TransferRepo{db: db} }

const transferCols = `id, item_id, buyer, seller, price, transaction_hash, timestamp, status`

func (r *TransferRepo) Insert(ctx context.Context, t domain.TransferRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
	  INSERT INTO transfers(`+transferCols+`)
	  VALUES(:id, :item_id, :buyer, :seller, :price, :transaction_hash, :timestamp, :status)
	`, t)
	return err
}

func (r *TransferRepo) Get(ctx context.Context, id string) (domain.TransferRecord, error) {
	var t domain.TransferRecord
	err := r.db.GetContext(ctx, &t, `SELECT `+transferCols+` FROM transfers WHERE id = ?`, id)
	return t, err
}

func (r *TransferRepo) SetStatus(ctx context.Context, id string, s domain.TransferStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE transfers SET status = ? WHERE id = ?`, string(s), id)
	return err
}

// ListLatest returns transfers newest first.
func (r *TransferRepo) ListLatest(ctx context.Context, limit int) ([]domain.TransferRecord, error) {
	if limit <= 0 {
		limit = 1000
	}
	out := []domain.TransferRecord{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+transferCols+` FROM transfers ORDER BY timestamp DESC, id DESC LIMIT ?
	`, limit)
	return out, err
}

func (r *TransferRepo) ByStatus(ctx context.Context, s domain.TransferStatus) ([]domain.TransferRecord, error) {
	out := []domain.TransferRecord{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+transferCols+` FROM transfers WHERE status = ? ORDER BY timestamp
	`, string(s))
	return out, err
}

// VolumeByStatus sums price over transfers in status s.
func (r *TransferRepo) VolumeByStatus(ctx context.Context, s domain.TransferStatus) (float64, error) {
	var v float64
	err := r.db.GetContext(ctx, &v, `SELECT COALESCE(SUM(price), 0.0) FROM transfers WHERE status = ?`, string(s))
	return v, err
}
