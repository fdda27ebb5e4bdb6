package analysis

import (
	"testing"

	"github.com/ashureev/founder-compass/internal/domain"
)

func findFlag(flags []domain.Flag, issue string) *domain.Flag {
	for i := range flags {
		if flags[i].Issue == issue {
			return &flags[i]
		}
	}
	return nil
}

func TestFeasibilityEmptyProfile(t *testing.T) {
	t.Parallel()

	flags := Feasibility(domain.Profile{}, domain.StageSeedStartup, domain.StageData{})
	if len(flags) != 0 {
		t.Fatalf("empty profile raised flags: %+v", flags)
	}
}

func TestFeasibilityCashRunway(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		Funding:  "bootstrapped",
		Revenue:  "€2,000",
		TeamSize: "8",
	}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	f := findFlag(flags, "Cash runway concern")
	if f == nil {
		t.Fatalf("no cash runway flag in %+v", flags)
	}
	if f.Category != domain.FlagRisk || f.Severity != domain.SeverityHigh {
		t.Fatalf("flag = %+v, want risk/high", f)
	}

	// A two-person team can live off the same revenue.
	p.TeamSize = "2"
	flags = Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if f := findFlag(flags, "Cash runway concern"); f != nil {
		t.Fatalf("unexpected flag for a lean team: %+v", f)
	}
}

func TestFeasibilityGrowthVsBudget(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		GrowthTarget: "300% this year",
		Budget:       "very limited right now",
	}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	f := findFlag(flags, "Aggressive growth target on a limited budget")
	if f == nil {
		t.Fatalf("no growth-vs-budget flag in %+v", flags)
	}
	if f.Category != domain.FlagContradiction {
		t.Fatalf("category = %s", f.Category)
	}

	// Doubling is the threshold, not yet beyond it.
	p.GrowthTarget = "100%"
	flags = Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Aggressive growth target on a limited budget") != nil {
		t.Fatal("100% target should not be flagged")
	}
}

func TestFeasibilityEnterpriseTooling(t *testing.T) {
	t.Parallel()

	data := domain.StageData{ToolSpendCeiling: 200}
	p := domain.Profile{Tools: []string{"Salesforce", "Notion"}}

	flags := Feasibility(p, domain.StagePreSeedIdea, data)
	if findFlag(flags, "Enterprise tooling before product validation") == nil {
		t.Fatalf("no tooling flag in %+v", flags)
	}

	// Same tools at a later stage are fine.
	flags = Feasibility(p, domain.StageEarlyScale, data)
	if findFlag(flags, "Enterprise tooling before product validation") != nil {
		t.Fatal("tooling flagged outside the idea stage")
	}

	// Without a configured ceiling the rule is skipped.
	flags = Feasibility(p, domain.StagePreSeedIdea, domain.StageData{})
	if findFlag(flags, "Enterprise tooling before product validation") != nil {
		t.Fatal("tooling flagged without benchmark data")
	}
}

func TestFeasibilityEnterpriseToolingBySpend(t *testing.T) {
	t.Parallel()

	data := domain.StageData{ToolSpendCeiling: 200}
	p := domain.Profile{ToolSpend: "we pay about 800 per month"}
	flags := Feasibility(p, domain.StagePreSeedIdea, data)
	if findFlag(flags, "Enterprise tooling before product validation") == nil {
		t.Fatalf("spend over ceiling not flagged: %+v", flags)
	}
}

func TestFeasibilityLeanTeamOutbound(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		TeamSize:    "3",
		SalesMotion: "mostly cold outreach and ABM",
	}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Outbound motion with a lean team") == nil {
		t.Fatalf("no lean-team flag in %+v", flags)
	}

	p.TeamSize = "12"
	flags = Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Outbound motion with a lean team") != nil {
		t.Fatal("large team flagged")
	}
}

func TestFeasibilityFounderBottleneck(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		FounderClosing: "yes, I close every deal myself",
		Bottleneck:     "we can't keep up, scaling the team is the issue",
	}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Founder is the sales bottleneck") == nil {
		t.Fatalf("no founder-bottleneck flag in %+v", flags)
	}
}

func TestFeasibilityLeakyBucket(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		ChurnRate:  "8% monthly",
		Bottleneck: "not enough leads in the pipeline",
	}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	f := findFlag(flags, "Leaky bucket")
	if f == nil {
		t.Fatalf("no leaky-bucket flag in %+v", flags)
	}
	if f.Severity != domain.SeverityHigh {
		t.Fatalf("severity = %s", f.Severity)
	}

	// Churn at the threshold does not trip the rule.
	p.ChurnRate = "5%"
	flags = Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Leaky bucket") != nil {
		t.Fatal("threshold churn flagged")
	}
}

func TestFeasibilityUntrackedAcquisition(t *testing.T) {
	t.Parallel()

	p := domain.Profile{GrowthTarget: "50% in six months"}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Growth target without acquisition channels") == nil {
		t.Fatalf("no untracked-acquisition flag in %+v", flags)
	}

	p.LeadSources = []string{"referrals"}
	flags = Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Growth target without acquisition channels") != nil {
		t.Fatal("flagged despite tracked lead sources")
	}
}

func TestFeasibilityPriorityWithoutDiagnosis(t *testing.T) {
	t.Parallel()

	p := domain.Profile{StatedPriority: "hire two more sales reps"}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Priority without diagnosis") == nil {
		t.Fatalf("no priority flag in %+v", flags)
	}

	p.DiagnosedProblems = []string{"conversion drops after the demo"}
	flags = Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if findFlag(flags, "Priority without diagnosis") != nil {
		t.Fatal("flagged despite diagnosed problems")
	}
}

func TestFeasibilityRuleOrderStable(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		GrowthTarget: "400%",
		Budget:       "tight",
		ChurnRate:    "9%",
		Bottleneck:   "lead generation",
	}
	flags := Feasibility(p, domain.StageSeedStartup, domain.StageData{})
	if len(flags) < 2 {
		t.Fatalf("want at least two flags, got %+v", flags)
	}
	if flags[0].Issue != "Aggressive growth target on a limited budget" {
		t.Fatalf("first flag = %q", flags[0].Issue)
	}
}
