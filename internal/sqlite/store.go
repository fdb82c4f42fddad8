// Package sqlite implements the SQLite catalog store. Same contract as
// the JSON store: load-or-seed on first run, corrupt data surfaced as an
// error, insertion order preserved.
// Implements: prd003-catalog-storage R3; docs/ARCHITECTURE § Storage.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/phaselab/pkg/types"
)

// CatalogDBName is the database file created inside the data directory.
const CatalogDBName = "catalog.db"

// Store reads and writes the catalog from a SQLite database in DataDir.
type Store struct {
	dataDir string
}

// NewStore returns a Store rooted at dataDir. The directory and database
// are created on first use.
func NewStore(dataDir string) *Store {
	if dataDir == "" {
		dataDir = "."
	}
	return &Store{dataDir: dataDir}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, CatalogDBName)
}

// Load reads the catalog from the database. A missing database file seeds
// the default catalog and persists it; an unreadable database or invalid
// rows fail with an error wrapping types.ErrCatalogCorrupt.
func (s *Store) Load() (*types.Catalog, error) {
	if _, err := os.Stat(s.Path()); os.IsNotExist(err) {
		catalog := types.DefaultCatalog()
		if err := s.Save(catalog); err != nil {
			return nil, fmt.Errorf("seed default catalog: %w", err)
		}
		return catalog, nil
	}

	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT key, name, freezing_point, boiling_point FROM substances ORDER BY ordinal`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrCatalogCorrupt, s.Path(), err)
	}
	defer rows.Close()

	catalog := types.NewCatalog()
	for rows.Next() {
		var sub types.Substance
		if err := rows.Scan(&sub.Key, &sub.Name, &sub.FreezingPointC, &sub.BoilingPointC); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrCatalogCorrupt, s.Path(), err)
		}
		if err := catalog.Add(sub); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrCatalogCorrupt, s.Path(), err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrCatalogCorrupt, s.Path(), err)
	}

	return catalog, nil
}

// Save replaces the database contents with the given catalog. The write
// is transactional: either every substance lands or none do.
func (s *Store) Save(c *types.Catalog) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createSubstances); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM substances`); err != nil {
		return fmt.Errorf("clear substances: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO substances (key, name, freezing_point, boiling_point, ordinal) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, sub := range c.List() {
		if _, err := stmt.Exec(sub.Key, sub.Name, sub.FreezingPointC, sub.BoilingPointC, i); err != nil {
			return fmt.Errorf("insert substance %q: %w", sub.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}
	return nil
}
