// Shared helpers for phaselab CLI commands.
// Implements: prd004-phaselab-cli (backend selection, catalog loading, output modes).
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/phaselab/internal/jsonstore"
	"github.com/mesh-intelligence/phaselab/internal/paths"
	"github.com/mesh-intelligence/phaselab/internal/results"
	"github.com/mesh-intelligence/phaselab/internal/sqlite"
	"github.com/mesh-intelligence/phaselab/pkg/types"
)

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PHASELAB_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > PHASELAB_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// openStore builds the CatalogStore selected by config.
func openStore() (types.CatalogStore, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.NewStore(cfg.DataDir), nil
	default:
		return jsonstore.NewStore(cfg.DataDir), nil
	}
}

// loadCatalog opens the configured store and loads the catalog, seeding
// defaults on first run.
func loadCatalog() (*types.Catalog, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}

	catalog, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// openJournal returns the analysis journal in the resolved data directory.
func openJournal() (*results.Journal, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return results.NewJournal(dataDir), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printResult writes one analysis result in human-readable form.
func printResult(w io.Writer, r *types.AnalysisResult) {
	fmt.Fprintf(w, "%s at %g°C and %g atm: %s\n", r.SubstanceName, r.TemperatureC, r.PressureAtm, r.State)
	fmt.Fprintf(w, "  %s\n", r.Description)
	fmt.Fprintf(w, "  Freezing point: %g°C  Boiling point: %g°C (adjusted: %.1f°C)\n",
		r.FreezingPointC, r.BoilingPointNormalC, r.BoilingPointActualC)
}
