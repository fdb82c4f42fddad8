// List command prints the substance catalog.
// Implements: prd001-substance-catalog R3 (List); prd004-phaselab-cli.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog substances with reference points",
	Long: `List prints every substance in the catalog with its freezing point and
nominal (1 atm) boiling point, in catalog order.

Entries whose freezing point is not below their boiling point are marked:
they come from hand-edited data files and classify by branch order only.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), catalog.List())
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tFREEZING °C\tBOILING °C")
	for _, s := range catalog.List() {
		note := ""
		if !s.Consistent() {
			note = "\t(inconsistent reference points)"
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g%s\n", s.Key, s.Name, s.FreezingPointC, s.BoilingPointC, note)
	}
	return w.Flush()
}
