package benchdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashureev/founder-compass/internal/domain"
)

func TestDefaultTableCoversAllStages(t *testing.T) {
	t.Parallel()

	table := Default()
	stages := []domain.Stage{
		domain.StagePreSeedIdea, domain.StageSeedStartup,
		domain.StageEarlyScale, domain.StageExpansionEnterprise,
	}
	for _, st := range stages {
		sd, ok := table[st]
		if !ok {
			t.Errorf("stage %s missing from embedded table", st)
			continue
		}
		if sd.Label == "" {
			t.Errorf("stage %s has no label", st)
		}
		if sd.ToolSpendCeiling <= 0 {
			t.Errorf("stage %s has no tool spend ceiling", st)
		}
		if len(sd.Metrics) == 0 {
			t.Errorf("stage %s has no metrics", st)
		}
	}
}

func TestParseDropsUnknownStageKeys(t *testing.T) {
	t.Parallel()

	data := []byte(`
stages:
  seed_startup:
    label: Seed
    metrics:
      churnRate:
        median: 4
        unit: "%"
        lowerIsBetter: true
  series_z:
    label: Bogus
    metrics: {}
`)
	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("table = %+v, want only seed_startup", table)
	}
	bench := table[domain.StageSeedStartup].Metrics["churnRate"]
	if bench.Median != 4 || !bench.LowerIsBetter {
		t.Fatalf("churnRate = %+v", bench)
	}
	if bench.Good != nil || bench.Bad != nil {
		t.Fatal("absent good/bad must stay nil so refs are derived")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("stages: [not a map")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	table, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("empty table from default load")
	}
}

func TestLoadOverrideFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := []byte(`
stages:
  early_scale:
    label: Scale
    toolSpendCeiling: 3000
    metrics:
      cac:
        median: 900
        good: 500
        bad: 2000
        unit: EUR
        lowerIsBetter: true
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sd, ok := table[domain.StageEarlyScale]
	if !ok {
		t.Fatalf("table = %+v", table)
	}
	if sd.ToolSpendCeiling != 3000 {
		t.Fatalf("ceiling = %v", sd.ToolSpendCeiling)
	}
	cac := sd.Metrics["cac"]
	if cac.Good == nil || *cac.Good != 500 {
		t.Fatalf("cac = %+v", cac)
	}
}

func TestLoadMissingFileDegradesToDefault(t *testing.T) {
	t.Parallel()

	table, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected degradation error")
	}
	if len(table) == 0 {
		t.Fatal("missing override must fall back to the embedded table")
	}
}

func TestLoadInvalidFileDegradesToDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := Load(path)
	if err == nil {
		t.Fatal("expected degradation error")
	}
	if len(table) == 0 {
		t.Fatal("invalid override must fall back to the embedded table")
	}
}
