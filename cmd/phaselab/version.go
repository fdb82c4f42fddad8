package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phaselab/pkg/phaselab"
)

const modulePath = "github.com/mesh-intelligence/phaselab"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the phaselab version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "phaselab v%s\nmodule: %s\n", phaselab.Version, modulePath)
		return nil
	},
}
