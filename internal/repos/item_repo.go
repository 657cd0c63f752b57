package repos

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"marketplace/internal/domain"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

const itemCols = `
    id, name, description, image, price, owner, creator, grouping_name, traits_json,
    token_id, contract_address, status, likes, views, created_at`

// ItemFilter narrows and orders an item listing. SortBy must be a key of
// ItemSortColumns; unknown values fall back to created_at.
type ItemFilter struct {
	Grouping string
	Status   domain.ItemStatus
	Search   string
	SortBy   string
	Desc     bool
	Offset   int
	Limit    int
}

// ItemSortColumns maps public sort keys to columns.
var ItemSortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"name":       "name",
	"likes":      "likes",
	"views":      "views",
	"token_id":   "token_id",
}

// itemRow adds the stored-only search column to an item.
type itemRow struct {
	domain.Item
	SearchText string `db:"search_text"`
}

// searchText is what List matches against. SQLite's LOWER only folds ASCII,
// so the folding happens here. Fields are joined with a unit separator,
// which search queries cannot contain.
func searchText(it domain.Item) string {
	return strings.ToLower(it.Name + "\x1f" + it.Description + "\x1f" + it.Grouping)
}

func (r *ItemRepo) Insert(ctx context.Context, it domain.Item) error {
	_, err := r.db.NamedExecContext(ctx, `
	  INSERT INTO items(`+itemCols+`, search_text)
	  VALUES(:id, :name, :description, :image, :price, :owner, :creator, :grouping_name, :traits_json,
	         :token_id, :contract_address, :status, :likes, :views, :created_at, :search_text)
	`, itemRow{Item: it, SearchText: searchText(it)})
	return err
}

// Get returns sql.ErrNoRows when the id is absent.
func (r *ItemRepo) Get(ctx context.Context, id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.GetContext(ctx, &it, `SELECT `+itemCols+` FROM items WHERE id = ?`, id)
	return it, err
}

func (r *ItemRepo) List(ctx context.Context, f ItemFilter) ([]domain.Item, error) {
	where := []string{"1 = 1"}
	args := []any{}
	if f.Grouping != "" {
		where = append(where, "grouping_name = ?")
		args = append(args, f.Grouping)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Search != "" {
		pat := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		where = append(where, `search_text LIKE ? ESCAPE '\'`)
		args = append(args, pat)
	}
	col, ok := ItemSortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := `SELECT ` + itemCols + `
	  FROM items
	  WHERE ` + strings.Join(where, " AND ") + `
	  ORDER BY ` + col + ` ` + dir + `, id ` + dir + `
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	out := []domain.Item{}
	err := r.db.SelectContext(ctx, &out, q, args...)
	return out, err
}

func (r *ItemRepo) ByGrouping(ctx context.Context, name string) ([]domain.Item, error) {
	out := []domain.Item{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+itemCols+` FROM items WHERE grouping_name = ? ORDER BY token_id
	`, name)
	return out, err
}

func (r *ItemRepo) ByOwner(ctx context.Context, owner string) ([]domain.Item, error) {
	out := []domain.Item{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+itemCols+` FROM items WHERE owner = ? ORDER BY token_id
	`, owner)
	return out, err
}

// IncrementViews adds one view in a single statement. It reports false when
// the id is absent.
func (r *ItemRepo) IncrementViews(ctx context.Context, id string) (bool, error) {
	return r.bump(ctx, `UPDATE items SET views = views + 1 WHERE id = ?`, id)
}

func (r *ItemRepo) IncrementLikes(ctx context.Context, id string) (bool, error) {
	return r.bump(ctx, `UPDATE items SET likes = likes + 1 WHERE id = ?`, id)
}

// MarkSold hands the item to buyer and flips it to sold.
func (r *ItemRepo) MarkSold(ctx context.Context, id, buyer string) (bool, error) {
	return r.bump(ctx, `UPDATE items SET owner = ?, status = ? WHERE id = ?`, buyer, string(domain.ItemSold), id)
}

func (r *ItemRepo) bump(ctx context.Context, q string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ItemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM items`)
	return n, err
}

func (r *ItemRepo) CountByStatus(ctx context.Context, s domain.ItemStatus) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM items WHERE status = ?`, string(s))
	return n, err
}

// NextTokenID hands out token numbers from a counter row. The first call
// starts at count(items)+1; later calls add one atomically.
func (r *ItemRepo) NextTokenID(ctx context.Context) (int64, error) {
	var v int64
	err := r.db.GetContext(ctx, &v, `
	  INSERT INTO counters(name, value) VALUES('token_id', (SELECT COUNT(*) FROM items) + 1)
	  ON CONFLICT(name) DO UPDATE SET value = counters.value + 1
	  RETURNING value
	`)
	return v, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
