// Package results implements the opt-in analysis journal: an append-only
// JSON array of past analysis results with a timestamp, written only when
// the caller asks for it.
// Implements: prd006-analysis-journal; docs/ARCHITECTURE § Journal.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/phaselab/pkg/types"
)

// JournalFileName is the results file created inside the data directory.
const JournalFileName = "analysis_results.json"

// analysisTimeLayout is the timestamp format used in the results file.
const analysisTimeLayout = "2006-01-02 15:04:05"

// ErrJournalCorrupt reports an existing results file that does not parse.
var ErrJournalCorrupt = errors.New("analysis journal is corrupt")

// Entry is one journaled result: the analysis fields plus a generated ID
// and the time the analysis ran.
type Entry struct {
	ResultID             string `json:"result_id"`
	types.AnalysisResult        // flattened into the entry.
	AnalysisTime         string `json:"analysis_time"`
}

// Journal appends analysis results to a JSON array file in DataDir.
type Journal struct {
	dataDir string
	now     func() time.Time
}

// NewJournal returns a Journal rooted at dataDir.
func NewJournal(dataDir string) *Journal {
	if dataDir == "" {
		dataDir = "."
	}
	return &Journal{dataDir: dataDir, now: time.Now}
}

// Path returns the results file path.
func (j *Journal) Path() string {
	return filepath.Join(j.dataDir, JournalFileName)
}

// Append adds the result to the journal and returns the stored entry.
// The whole array is rewritten on each append; the journal is a
// convenience log, not a database.
func (j *Journal) Append(result *types.AnalysisResult) (Entry, error) {
	entries, err := j.All()
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ResultID:       newResultID(),
		AnalysisResult: *result,
		AnalysisTime:   j.now().Format(analysisTimeLayout),
	}
	entries = append(entries, entry)

	if err := os.MkdirAll(j.dataDir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return Entry{}, fmt.Errorf("encode journal: %w", err)
	}
	if err := os.WriteFile(j.Path(), data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write journal: %w", err)
	}
	return entry, nil
}

// All returns every journaled entry in append order. A missing file is an
// empty journal; a malformed file fails with ErrJournalCorrupt.
func (j *Journal) All() ([]Entry, error) {
	data, err := os.ReadFile(j.Path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrJournalCorrupt, j.Path(), err)
	}
	return entries, nil
}

// newResultID generates a UUID v7 entry ID, falling back to v4 if v7
// generation fails.
func newResultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
