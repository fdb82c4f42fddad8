// Serve command runs the analyzer HTTP server.
// Implements: prd005-http-api; prd004-phaselab-cli.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phaselab/internal/web"
	"github.com/mesh-intelligence/phaselab/pkg/analyzer"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyzer HTTP server",
	Long: `Serve runs the HTTP server hosting the JSON API (/api/liquids,
/api/analyze, /api/health) and the analyzer web page on /.

The server runs until interrupted (SIGINT/SIGTERM).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: listen_addr from config.yaml)")
}

func runServe(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	journal, err := openJournal()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = configListenAddr
	}

	handler := web.NewHandler(catalog, analyzer.New(catalog), journal)
	server, err := web.NewServer(web.Config{Addr: addr}, handler)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (Ctrl+C to stop)\n", server.Addr())
	return server.ListenAndServe(ctx)
}
