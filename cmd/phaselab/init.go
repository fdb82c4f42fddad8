// Init command creates the configuration and data directories and seeds
// the catalog backend.
// Implements: prd004-phaselab-cli (init behavior); prd007-configuration-directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize phaselab storage",
	Long: `Create configuration and data directories, write a default config.yaml,
and seed the catalog backend with the built-in substances if it is empty.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and config.yaml already exist by now: PersistentPreRunE
	// creates them while loading config.
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Phaselab initialized: %d substances in %s (%s backend)\n",
		catalog.Len(), dataDir, configBackend)
	return nil
}
