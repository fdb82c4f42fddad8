// Package jsonstore implements the JSON-file catalog store. The on-disk
// format is a single object keyed by substance key, the established
// liquids_data.json layout, so hand-edited files keep working. Key order
// in the file is the catalog's insertion order and survives load/save
// round trips.
// Implements: prd003-catalog-storage R2; docs/ARCHITECTURE § Storage.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/phaselab/pkg/types"
)

// CatalogFileName is the catalog file created inside the data directory.
const CatalogFileName = "liquids_data.json"

// substanceJSON mirrors the per-substance record in liquids_data.json.
// The key is the enclosing object's field name, not part of the record.
type substanceJSON struct {
	Name          string  `json:"name"`
	FreezingPoint float64 `json:"freezing_point"`
	BoilingPoint  float64 `json:"boiling_point"`
}

// Store reads and writes the catalog as a JSON file in DataDir.
type Store struct {
	dataDir string
}

// NewStore returns a Store rooted at dataDir. The directory is created on
// first Save.
func NewStore(dataDir string) *Store {
	if dataDir == "" {
		dataDir = "."
	}
	return &Store{dataDir: dataDir}
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, CatalogFileName)
}

// Load reads the catalog file. A missing file seeds the default catalog
// and persists it; an unreadable or malformed file fails with an error
// wrapping types.ErrCatalogCorrupt.
func (s *Store) Load() (*types.Catalog, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		catalog := types.DefaultCatalog()
		if err := s.Save(catalog); err != nil {
			return nil, fmt.Errorf("seed default catalog: %w", err)
		}
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	catalog, err := decodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrCatalogCorrupt, s.Path(), err)
	}
	return catalog, nil
}

// Save writes the catalog to the data directory, creating it if needed.
func (s *Store) Save(c *types.Catalog) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := encodeCatalog(c)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}

// decodeCatalog parses the catalog object with a token walk so that key
// order in the file becomes catalog insertion order. encoding/json map
// decoding would lose it.
func decodeCatalog(data []byte) (*types.Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected top-level object, got %v", tok)
	}

	catalog := types.NewCatalog()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		var rec substanceJSON
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("substance %q: %w", key, err)
		}

		err = catalog.Add(types.Substance{
			Key:            key,
			Name:           rec.Name,
			FreezingPointC: rec.FreezingPoint,
			BoilingPointC:  rec.BoilingPoint,
		})
		if err != nil {
			return nil, fmt.Errorf("substance %q: %w", key, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// encodeCatalog renders the catalog as an indent-2 JSON object in
// insertion order. Assembled by hand because json.Marshal on a map would
// sort the keys.
func encodeCatalog(c *types.Catalog) ([]byte, error) {
	substances := c.List()

	var buf bytes.Buffer
	buf.WriteString("{")
	for i, s := range substances {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")

		key, err := json.Marshal(s.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")

		rec, err := json.MarshalIndent(substanceJSON{
			Name:          s.Name,
			FreezingPoint: s.FreezingPointC,
			BoilingPoint:  s.BoilingPointC,
		}, "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.Write(rec)
	}
	if len(substances) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
