package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"marketplace/internal/domain"
)

type OwnerRepo struct{ db *sqlx.DB }

func NewOwnerRepo(db *sqlx.DB) *OwnerRepo { return &OwnerRepo{db: db} }

const ownerCols = `id, username, email, wallet_address, profile_image, bio, verified, created_at`

// Username and email are not unique.
func (r *OwnerRepo) Insert(ctx context.Context, o domain.Owner) error {
	_, err := r.db.NamedExecContext(ctx, `
	  INSERT INTO owners(`+ownerCols+`)
	  VALUES(:id, :username, :email, :wallet_address, :profile_image, :bio, :verified, :created_at)
	`, o)
	return err
}

func (r *OwnerRepo) Get(ctx context.Context, id string) (domain.Owner, error) {
	var o domain.Owner
	err := r.db.GetContext(ctx, &o, `SELECT `+ownerCols+` FROM owners WHERE id = ?`, id)
	return o, err
}

func (r *OwnerRepo) List(ctx context.Context, limit int) ([]domain.Owner, error) {
	if limit <= 0 {
		limit = 1000
	}
	out := []domain.Owner{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+ownerCols+` FROM owners ORDER BY created_at, id LIMIT ?
	`, limit)
	return out, err
}

func (r *OwnerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM owners`)
	return n, err
}
