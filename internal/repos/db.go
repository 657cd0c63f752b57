package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite store and ensures the collections exist.
// The pool is held to a single connection: SQLite serialises writers anyway,
// and ":memory:" databases are per connection.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Records are flat rows with no foreign keys: references between
// collections are kept by the services, not the store.
func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA journal_mode = WAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  price REAL NOT NULL,
  owner TEXT NOT NULL,
  creator TEXT NOT NULL,
  grouping_name TEXT NOT NULL,
  traits_json TEXT NOT NULL DEFAULT '[]',
  token_id INTEGER NOT NULL,
  contract_address TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'listed',
  likes INTEGER NOT NULL DEFAULT 0,
  views INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  search_text TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_items_grouping   ON items(grouping_name);
CREATE INDEX IF NOT EXISTS idx_items_owner      ON items(owner);
CREATE INDEX IF NOT EXISTS idx_items_status     ON items(status);
CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at);

CREATE TABLE IF NOT EXISTS owners(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  email TEXT NOT NULL,
  wallet_address TEXT NOT NULL,
  profile_image TEXT,
  bio TEXT,
  verified INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS groupings(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  creator TEXT NOT NULL,
  banner_image TEXT,
  floor_price REAL NOT NULL DEFAULT 0,
  volume REAL NOT NULL DEFAULT 0,
  items_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_groupings_name ON groupings(name);

CREATE TABLE IF NOT EXISTS transfers(
  id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL,
  buyer TEXT NOT NULL,
  seller TEXT NOT NULL,
  price REAL NOT NULL,
  transaction_hash TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending'
);
CREATE INDEX IF NOT EXISTS idx_transfers_item   ON transfers(item_id);
CREATE INDEX IF NOT EXISTS idx_transfers_status ON transfers(status);

-- Named monotonic counters (token numbers)
CREATE TABLE IF NOT EXISTS counters(
  name TEXT PRIMARY KEY,
  value INTEGER NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}
