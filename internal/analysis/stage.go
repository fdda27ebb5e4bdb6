package analysis

import (
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// stageKeywords pairs a stage with the keyword set that resolves to it.
// Sets are curated to be disjoint under the evaluation order below, so the
// first match is the only match. pre_seed_idea is checked before
// seed_startup because "pre seed" contains "seed".
var stageKeywords = []struct {
	stage    domain.Stage
	keywords []string
}{
	{domain.StagePreSeedIdea, []string{
		"pre seed", "idea", "concept", "prototype", "mvp",
		"validating", "not launched", "before launch", "no revenue yet",
	}},
	{domain.StageExpansionEnterprise, []string{
		"series b", "series c", "series d", "expansion", "enterprise",
		"international", "new markets", "multi market", "ipo",
	}},
	{domain.StageEarlyScale, []string{
		"series a", "scaling", "scale up", "scale", "growth stage",
		"growing fast", "hypergrowth",
	}},
	{domain.StageSeedStartup, []string{
		"seed", "startup", "first customers", "early revenue",
		"product market fit", "just launched", "launched",
	}},
}

// canonicalStages maps the four canonical identifiers to themselves so
// already-resolved input passes through unchanged.
var canonicalStages = map[string]domain.Stage{
	string(domain.StagePreSeedIdea):         domain.StagePreSeedIdea,
	string(domain.StageSeedStartup):         domain.StageSeedStartup,
	string(domain.StageEarlyScale):          domain.StageEarlyScale,
	string(domain.StageExpansionEnterprise): domain.StageExpansionEnterprise,
}

// ResolveStage maps a free-text growth-stage description to one of the
// four canonical stages. Total and deterministic: canonical ids return
// unchanged, unmatched or empty input defaults to seed_startup.
func ResolveStage(raw string) domain.Stage {
	trimmed := strings.TrimSpace(raw)
	if st, ok := canonicalStages[trimmed]; ok {
		return st
	}

	norm := normalizeStageText(trimmed)
	for _, entry := range stageKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(norm, kw) {
				return entry.stage
			}
		}
	}
	return domain.StageSeedStartup
}

// normalizeStageText lower-cases and replaces punctuation with spaces so
// "Pre-Seed" and "Series A, scaling fast" match their keyword forms.
func normalizeStageText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return " " + strings.Join(strings.Fields(b.String()), " ") + " "
}
