// Package benchdata loads the per-stage benchmark reference tables. A
// default table ships embedded in the binary; an external YAML file can
// override it. Loading never fails hard: the worst case is an empty table,
// which downstream code treats as "benchmarks not available".
package benchdata

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ashureev/founder-compass/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed benchmarks.yaml
var defaultYAML []byte

type yamlBenchmark struct {
	Median        float64  `yaml:"median"`
	Good          *float64 `yaml:"good"`
	Bad           *float64 `yaml:"bad"`
	Unit          string   `yaml:"unit"`
	Source        string   `yaml:"source"`
	LowerIsBetter bool     `yaml:"lowerIsBetter"`
}

type yamlStage struct {
	Label            string                   `yaml:"label"`
	ToolSpendCeiling float64                  `yaml:"toolSpendCeiling"`
	Metrics          map[string]yamlBenchmark `yaml:"metrics"`
}

type yamlTable struct {
	Stages map[string]yamlStage `yaml:"stages"`
}

// canonical guards against typo'd stage keys in override files: entries
// under unknown keys are dropped.
var canonical = map[string]domain.Stage{
	string(domain.StagePreSeedIdea):         domain.StagePreSeedIdea,
	string(domain.StageSeedStartup):         domain.StageSeedStartup,
	string(domain.StageEarlyScale):          domain.StageEarlyScale,
	string(domain.StageExpansionEnterprise): domain.StageExpansionEnterprise,
}

// Parse decodes a YAML benchmark table.
func Parse(data []byte) (domain.BenchmarkTable, error) {
	var raw yamlTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse benchmark yaml: %w", err)
	}

	table := make(domain.BenchmarkTable, len(raw.Stages))
	for key, ys := range raw.Stages {
		stage, ok := canonical[key]
		if !ok {
			continue
		}
		sd := domain.StageData{
			Label:            ys.Label,
			ToolSpendCeiling: ys.ToolSpendCeiling,
			Metrics:          make(map[string]domain.Benchmark, len(ys.Metrics)),
		}
		for name, yb := range ys.Metrics {
			sd.Metrics[name] = domain.Benchmark{
				Median:        yb.Median,
				Good:          yb.Good,
				Bad:           yb.Bad,
				Unit:          yb.Unit,
				Source:        yb.Source,
				LowerIsBetter: yb.LowerIsBetter,
			}
		}
		table[stage] = sd
	}
	return table, nil
}

// Default returns the embedded benchmark table. If the embedded data is
// unparseable the result is an empty (but usable) table.
func Default() domain.BenchmarkTable {
	table, err := Parse(defaultYAML)
	if err != nil {
		return domain.BenchmarkTable{}
	}
	return table
}

// Load reads a benchmark table from path, falling back to the embedded
// default when the path is empty or the file is unreadable or invalid.
// The returned table is always usable; the error only reports why the
// override was not applied, so callers can log the degradation.
func Load(path string) (domain.BenchmarkTable, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read benchmark file: %w", err)
	}
	table, err := Parse(data)
	if err != nil {
		return Default(), err
	}
	return table, nil
}
