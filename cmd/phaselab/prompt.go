// Prompt command runs the interactive terminal front end.
// Implements: prd004-phaselab-cli (interactive prompt loop).
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phaselab/internal/results"
	"github.com/mesh-intelligence/phaselab/pkg/analyzer"
	"github.com/mesh-intelligence/phaselab/pkg/types"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Analyze substances interactively",
	Long: `Prompt starts an interactive loop: pick a substance from the catalog,
enter a temperature and a pressure, and read the classified state.
Enter q at any prompt to quit.`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	journal, err := openJournal()
	if err != nil {
		return err
	}

	session := &promptSession{
		in:       bufio.NewScanner(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
		catalog:  catalog,
		analyzer: analyzer.New(catalog),
		journal:  journal,
	}
	return session.run()
}

// promptSession holds the state of one interactive run.
type promptSession struct {
	in       *bufio.Scanner
	out      io.Writer
	catalog  *types.Catalog
	analyzer *analyzer.Analyzer
	journal  *results.Journal
}

func (s *promptSession) run() error {
	fmt.Fprintln(s.out, "🧪 Phaselab interactive analyzer. Enter q to quit.")

	for {
		substance, ok := s.pickSubstance()
		if !ok {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}

		temperature, ok := s.readFloat(fmt.Sprintf("Temperature for %s (°C): ", substance.Name), nil)
		if !ok {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}

		defaultPressure := 1.0
		pressure, ok := s.readFloat("Pressure (atm) [1.0]: ", &defaultPressure)
		if !ok {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}

		result, err := s.analyzer.Analyze(temperature, pressure, substance.Key)
		if err != nil {
			// Catalog keys come from the menu, so only pressure can fail.
			fmt.Fprintf(s.out, "Error: %v\n\n", err)
			continue
		}

		fmt.Fprintln(s.out)
		printResult(s.out, result)

		if s.readYes("Save this result? [y/N]: ") {
			if _, err := s.journal.Append(result); err != nil {
				fmt.Fprintf(s.out, "Error: save result: %v\n", err)
			} else {
				fmt.Fprintln(s.out, "Result saved.")
			}
		}
		fmt.Fprintln(s.out)
	}
}

// pickSubstance shows the numbered catalog menu and reads a selection.
// Returns false when the user quits or input ends.
func (s *promptSession) pickSubstance() (types.Substance, bool) {
	substances := s.catalog.List()

	fmt.Fprintln(s.out, "\nSubstances:")
	for i, sub := range substances {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, sub.Name)
	}

	for {
		fmt.Fprintf(s.out, "Select substance (1-%d): ", len(substances))
		line, ok := s.readLine()
		if !ok {
			return types.Substance{}, false
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(substances) {
			fmt.Fprintf(s.out, "Please enter a number between 1 and %d.\n", len(substances))
			continue
		}
		return substances[n-1], true
	}
}

// readFloat prompts until it reads a valid number. An empty line picks the
// default when one is given. Returns false when the user quits.
func (s *promptSession) readFloat(prompt string, def *float64) (float64, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		if line == "" && def != nil {
			return *def, true
		}

		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a number.")
			continue
		}
		return v, true
	}
}

// readYes reads a yes/no answer, defaulting to no.
func (s *promptSession) readYes(prompt string) bool {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return false
	}
	return line == "y" || line == "yes"
}

// readLine reads one trimmed, lowercased line. Returns false on EOF or an
// explicit quit.
func (s *promptSession) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	line := strings.ToLower(strings.TrimSpace(s.in.Text()))
	if line == "q" || line == "quit" || line == "exit" {
		return "", false
	}
	return line, true
}
