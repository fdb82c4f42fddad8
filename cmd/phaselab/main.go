// Package main provides the phaselab CLI.
// Implements: prd004-phaselab-cli; docs/ARCHITECTURE § CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phaselab/pkg/phaselab"
	"github.com/mesh-intelligence/phaselab/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Config values loaded by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir    string
	configBackend    string
	configListenAddr string
)

var rootCmd = &cobra.Command{
	Use:     "phaselab",
	Short:   "Phaselab classifies the physical state of substances",
	Version: phaselab.Version,
	Long: `Phaselab classifies the physical state (solid, liquid, gas) of a named
substance at a given temperature and pressure, using a small catalog of
reference freezing and boiling points and a linear pressure correction.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no config and must not create directories.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.phaselab-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: corrupt storage is a system
// error, everything else is treated as user-correctable.
func exitCode(err error) int {
	if errors.Is(err, types.ErrCatalogCorrupt) {
		return exitSysError
	}
	return exitUserError
}
