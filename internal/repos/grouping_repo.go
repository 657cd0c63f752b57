package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"marketplace/internal/domain"
)

type GroupingRepo struct{ db *sqlx.DB }

func NewGroupingRepo(db *sqlx.DB) *GroupingRepo { return &GroupingRepo{db: db} }

const groupingCols = `id, name, description, creator, banner_image, floor_price, volume, items_count, created_at`

func (r *GroupingRepo) Insert(ctx context.Context, g domain.Grouping) error {
	_, err := r.db.NamedExecContext(ctx, `
	  INSERT INTO groupings(`+groupingCols+`)
	  VALUES(:id, :name, :description, :creator, :banner_image, :floor_price, :volume, :items_count, :created_at)
	`, g)
	return err
}

func (r *GroupingRepo) Get(ctx context.Context, id string) (domain.Grouping, error) {
	var g domain.Grouping
	err := r.db.GetContext(ctx, &g, `SELECT `+groupingCols+` FROM groupings WHERE id = ?`, id)
	return g, err
}

func (r *GroupingRepo) List(ctx context.Context, limit int) ([]domain.Grouping, error) {
	if limit <= 0 {
		limit = 1000
	}
	out := []domain.Grouping{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+groupingCols+` FROM groupings ORDER BY created_at, id LIMIT ?
	`, limit)
	return out, err
}

// UpdateStats writes the three derived fields in one statement, so a reader
// never sees them half applied. Every grouping with that name is updated.
func (r *GroupingRepo) UpdateStats(ctx context.Context, name string, floor, volume float64, count int64) error {
	_, err := r.db.ExecContext(ctx, `
	  UPDATE groupings SET floor_price = ?, volume = ?, items_count = ? WHERE name = ?
	`, floor, volume, count, name)
	return err
}

func (r *GroupingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM groupings`)
	return n, err
}
