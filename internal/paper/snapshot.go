package paper

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is one day's feed as written by the pipeline exporter: a date,
// the paper count and the flat paper list.
type Snapshot struct {
	Date        string  `json:"date"`
	TotalPapers int     `json:"total_papers"`
	Papers      []Paper `json:"papers"`
}

// Load reads a snapshot JSON file and normalizes every paper so the filter
// engine only ever sees sentinel-complete records.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	for i := range snap.Papers {
		snap.Papers[i].Normalize()
	}
	snap.TotalPapers = len(snap.Papers)

	return &snap, nil
}
