package lookup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultCacheFile is the cache database name inside the data directory.
const DefaultCacheFile = "lookup-cache.db"

const createAddresses = `CREATE TABLE IF NOT EXISTS addresses (
    entry_id TEXT PRIMARY KEY,
    postal_code TEXT NOT NULL UNIQUE,
    address TEXT NOT NULL,
    cached_at TEXT NOT NULL
);`

// Cache stores resolved addresses in a SQLite database.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createAddresses); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached address for code. ok is false on a miss.
func (c *Cache) Get(ctx context.Context, code string) (addr string, ok bool, err error) {
	row := c.db.QueryRowContext(ctx, "SELECT address FROM addresses WHERE postal_code = ?", code)
	if err := row.Scan(&addr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("querying cache: %w", err)
	}
	return addr, true, nil
}

// Put stores addr for code, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, code, addr string) error {
	_, err := c.db.ExecContext(ctx, `INSERT INTO addresses (entry_id, postal_code, address, cached_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(postal_code) DO UPDATE SET address = excluded.address, cached_at = excluded.cached_at`,
		generateID(), code, addr, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM addresses").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// generateID returns a UUID v7 entry ID.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
