// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grants

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/grantscout/pkg/types"
)

// ReportFile is the on-disk representation of a completed lookup. A search
// can be saved to a file and reviewed later without re-querying the APIs.
type ReportFile struct {
	Query   types.Criteria   `yaml:"query"`
	Config  ReportFileConfig `yaml:"config"`
	Awards  []types.Award    `yaml:"awards"`
	Summary ReportSummary    `yaml:"summary"`
}

// ReportFileConfig stores the settings that produced the results.
type ReportFileConfig struct {
	PageSize   int `yaml:"page_size"`
	MaxRecords int `yaml:"max_records"`
}

// ReportSummary stores result statistics and a timestamp.
type ReportSummary struct {
	Total     int       `yaml:"total"`
	Sources   []string  `yaml:"sources,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReportFile saves criteria and results to a YAML file.
func WriteReportFile(path string, crit types.Criteria, cfg types.SearchConfig, out SearchOutput) error {
	rf := ReportFile{
		Query: crit,
		Config: ReportFileConfig{
			PageSize:   cfg.PageSize,
			MaxRecords: cfg.MaxRecords,
		},
		Awards: out.Awards,
		Summary: ReportSummary{
			Total:     len(out.Awards),
			Sources:   out.Sources,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved report file from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
