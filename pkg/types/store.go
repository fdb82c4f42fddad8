package types

// CatalogStore abstracts catalog persistence so the classifier and its
// callers never touch storage directly. Implementations live in
// internal/jsonstore and internal/sqlite.
// Implements: prd003-catalog-storage R1.
type CatalogStore interface {
	// Load reads the persisted catalog. When the backing location does
	// not exist, Load seeds the default catalog, persists it, and
	// returns it. Existing but malformed data fails with an error
	// wrapping ErrCatalogCorrupt; it is never silently repaired.
	Load() (*Catalog, error)

	// Save persists the catalog, replacing any previous contents.
	Save(c *Catalog) error
}
