// Package catalog persists imported theme documents in a SQLite database so
// they can be resolved later by uuid without the original file.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"scopestyle/internal/debug"
	appErrors "scopestyle/internal/errors"
	"scopestyle/internal/theme"
)

const schema = `
	CREATE TABLE IF NOT EXISTS themes (
		uuid TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		document TEXT NOT NULL,
		imported_at TEXT NOT NULL
	);
`

// ErrNotFound indicates no theme is stored under the requested uuid.
var ErrNotFound = errors.New("catalog: theme not found")

// Entry summarises one stored theme.
type Entry struct {
	UUID       string
	Name       string
	Source     string
	ImportedAt time.Time
}

// Catalog is a SQLite-backed store of theme documents keyed by uuid.
type Catalog struct {
	db   *sql.DB
	path string
}

// now is a function variable to allow overriding in tests.
var now = time.Now

// Open opens (creating if needed) the catalog database at path.
func Open(ctx context.Context, path string) (*Catalog, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, storageError("open catalog", fmt.Errorf("empty database path"))
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, storageError("open catalog", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storageError("ping catalog", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, storageError("create catalog schema", err)
	}
	debug.Logf("catalog: opened %s", trimmed)
	return &Catalog{db: db, path: trimmed}, nil
}

// buildDSN creates a read-write DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "journal_mode(WAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database file location.
func (c *Catalog) Path() string {
	return c.path
}

// Close releases the database handle.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Put stores doc, replacing any document with the same uuid. Documents that
// would not parse are rejected.
func (c *Catalog) Put(ctx context.Context, doc theme.Document, source string) error {
	rs, err := theme.Parse(doc)
	if err != nil {
		return err
	}
	data, err := theme.EncodeJSON(doc)
	if err != nil {
		return storageError("encode theme", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO themes (uuid, name, source, document, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(uuid) DO UPDATE SET
			name = excluded.name,
			source = excluded.source,
			document = excluded.document,
			imported_at = excluded.imported_at
	`, rs.UUID, rs.Name, source, string(data), now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return storageError(fmt.Sprintf("store theme %s", rs.UUID), err)
	}
	debug.Logf("catalog: stored %s (%q) from %s", rs.UUID, rs.Name, source)
	return nil
}

// Get loads the document stored under uuid.
func (c *Catalog) Get(ctx context.Context, uuid string) (theme.Document, error) {
	var data string
	err := c.db.QueryRowContext(ctx, `SELECT document FROM themes WHERE uuid = ?`, strings.TrimSpace(uuid)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return theme.Document{}, notFoundError(uuid)
	}
	if err != nil {
		return theme.Document{}, storageError(fmt.Sprintf("load theme %s", uuid), err)
	}
	return theme.DecodeJSON([]byte(data))
}

// List returns every stored theme ordered by name, then uuid.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT uuid, name, source, imported_at
		FROM themes
		ORDER BY name, uuid
	`)
	if err != nil {
		return nil, storageError("query themes", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			imported string
		)
		if err := rows.Scan(&e.UUID, &e.Name, &e.Source, &imported); err != nil {
			return nil, storageError("scan theme", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, imported); err == nil {
			e.ImportedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate themes", err)
	}
	return entries, nil
}

// Delete removes a stored theme.
func (c *Catalog) Delete(ctx context.Context, uuid string) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM themes WHERE uuid = ?`, strings.TrimSpace(uuid))
	if err != nil {
		return storageError(fmt.Sprintf("delete theme %s", uuid), err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFoundError(uuid)
	}
	return nil
}

// Load resolves a stored theme through a registry, so repeated loads of one
// uuid share a Theme.
func (c *Catalog) Load(ctx context.Context, reg *theme.Registry, uuid string) (*theme.Theme, error) {
	if th, ok := reg.Get(uuid); ok {
		return th, nil
	}
	doc, err := c.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return reg.GetOrCreate(doc)
}

func storageError(reason string, err error) error {
	return appErrors.New(appErrors.CodeStorageFailed, reason, err)
}

func notFoundError(uuid string) error {
	return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("theme %s", uuid), ErrNotFound)
}
