package analysis

import (
	"fmt"
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Thresholds used by the feasibility rules.
const (
	// aggressiveGrowthPct flags growth targets beyond doubling.
	aggressiveGrowthPct = 100
	// leanTeamMax is the largest team still considered too small for an
	// outbound or account-based motion.
	leanTeamMax = 5
	// lowRevenueCeiling marks monthly revenue too thin to carry a team on
	// bootstrapped funding.
	lowRevenueCeiling = 5000
	// churnAlarmPct is the monthly churn above which chasing acquisition
	// is treated as filling a leaky bucket.
	churnAlarmPct = 5
)

// Keyword tables for the rule checks.
var (
	limitedBudgetWords  = []string{"limited", "tight", "minimal", "very small", "low", "restricted"}
	outboundMotionWords = []string{"outbound", "account based", "account-based", "abm", "cold call", "cold outreach", "field sales"}
	enterpriseToolWords = []string{"salesforce", "marketo", "6sense", "demandbase", "gainsight", "workday", "netsuite", "enterprise"}
	founderClosingWords = []string{"yes", "founder", "myself", "solely", "only i", "i close", "i do"}
	scalingWords        = []string{"scal", "capacity", "bandwidth", "hiring", "can't keep up", "cannot keep up"}
	acquisitionWords    = []string{"acquisition", "lead", "leads", "top of funnel", "pipeline", "traffic", "demand gen"}
)

type rule func(p *domain.Profile, stage domain.Stage, data domain.StageData) *domain.Flag

// rules is the fixed evaluation order. Checks are independent: each sees
// the same profile, none short-circuits another, and together they only
// annotate - the profile is never modified.
var rules = []rule{
	ruleGrowthVsBudget,
	ruleEnterpriseTooling,
	ruleLeanTeamOutbound,
	ruleCashRunway,
	ruleFounderBottleneck,
	ruleLeakyBucket,
	ruleUntrackedAcquisition,
	rulePriorityWithoutDiagnosis,
}

// Feasibility runs the rule battery over a completed profile and returns
// the flags in rule order. Rules with missing or unparseable inputs are
// skipped, never raised as errors.
func Feasibility(p domain.Profile, stage domain.Stage, data domain.StageData) []domain.Flag {
	var flags []domain.Flag
	for _, r := range rules {
		if f := r(&p, stage, data); f != nil {
			flags = append(flags, *f)
		}
	}
	return flags
}

// ruleGrowthVsBudget: a growth target beyond doubling while the budget is
// described as limited.
func ruleGrowthVsBudget(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	target, ok := ExtractNumber(p.GrowthTarget)
	if !ok || target <= aggressiveGrowthPct {
		return nil
	}
	if !containsAny(p.Budget, limitedBudgetWords) {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagContradiction,
		Severity:       domain.SeverityHigh,
		Issue:          "Aggressive growth target on a limited budget",
		Detail:         fmt.Sprintf("A growth target of %.0f%% was stated while the budget is described as %q.", target, p.Budget),
		Recommendation: "Either lower the target to match the budget or identify what frees up investment capacity.",
	}
}

// ruleEnterpriseTooling: enterprise-grade tooling at the earliest stage,
// measured against the stage's tool-spend ceiling. Skipped when no
// benchmark data is configured for the stage.
func ruleEnterpriseTooling(p *domain.Profile, stage domain.Stage, data domain.StageData) *domain.Flag {
	if stage != domain.StagePreSeedIdea || data.ToolSpendCeiling <= 0 {
		return nil
	}
	heavyTools := containsAny(strings.Join(p.Tools, " "), enterpriseToolWords)
	spend, spendOK := ExtractNumber(p.ToolSpend)
	overCeiling := spendOK && spend > data.ToolSpendCeiling
	if !heavyTools && !overCeiling {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagAntiPattern,
		Severity:       domain.SeverityMedium,
		Issue:          "Enterprise tooling before product validation",
		Detail:         fmt.Sprintf("Enterprise-grade tools at the idea stage; comparable companies keep tool spend under %.0f.", data.ToolSpendCeiling),
		Recommendation: "Validate the product with lightweight tools first and defer enterprise contracts.",
	}
}

// ruleLeanTeamOutbound: a team of five or fewer running an outbound or
// account-based motion.
func ruleLeanTeamOutbound(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	team, ok := ExtractNumber(p.TeamSize)
	if !ok || team > leanTeamMax {
		return nil
	}
	if !containsAny(p.SalesMotion, outboundMotionWords) {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagContradiction,
		Severity:       domain.SeverityMedium,
		Issue:          "Outbound motion with a lean team",
		Detail:         fmt.Sprintf("An outbound/account-based sales motion needs dedicated capacity, but the team has %.0f people.", team),
		Recommendation: "Narrow to a single tightly-defined segment or shift toward an inbound-assisted motion.",
	}
}

// ruleCashRunway: bootstrapped funding, very low revenue, yet a team
// larger than five people to pay.
func ruleCashRunway(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	if !strings.Contains(strings.ToLower(p.Funding), "bootstrap") {
		return nil
	}
	revenue, ok := ExtractNumber(p.Revenue)
	if !ok || revenue >= lowRevenueCeiling {
		return nil
	}
	team, ok := ExtractNumber(p.TeamSize)
	if !ok || team <= leanTeamMax {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagRisk,
		Severity:       domain.SeverityHigh,
		Issue:          "Cash runway concern",
		Detail:         fmt.Sprintf("Bootstrapped with revenue around %.0f and a team of %.0f - payroll likely exceeds income.", revenue, team),
		Recommendation: "Clarify the runway in months and the plan that extends it before investing in growth.",
	}
}

// ruleFounderBottleneck: the founder personally closes every deal while a
// scaling bottleneck is already stated.
func ruleFounderBottleneck(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	if !containsAny(p.FounderClosing, founderClosingWords) {
		return nil
	}
	if !containsAny(p.Bottleneck, scalingWords) {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagStructural,
		Severity:       domain.SeverityMedium,
		Issue:          "Founder is the sales bottleneck",
		Detail:         "Deals close only through the founder while scaling is already the stated constraint.",
		Recommendation: "Document the sales process and move repeatable steps to someone other than the founder.",
	}
}

// ruleLeakyBucket: churn above the alarm threshold while the stated
// bottleneck is framed as acquisition or lead generation.
func ruleLeakyBucket(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	churn, ok := ExtractNumber(p.ChurnRate)
	if !ok || churn <= churnAlarmPct {
		return nil
	}
	if !containsAny(p.Bottleneck, acquisitionWords) {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagContradiction,
		Severity:       domain.SeverityHigh,
		Issue:          "Leaky bucket",
		Detail:         fmt.Sprintf("Churn of %.1f%% per month while the focus is on acquiring more leads - new customers drain out as fast as they come in.", churn),
		Recommendation: "Fix retention before spending more on acquisition.",
	}
}

// ruleUntrackedAcquisition: a growth target without any tracked lead
// source or marketing channel to deliver it.
func ruleUntrackedAcquisition(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	if strings.TrimSpace(p.GrowthTarget) == "" {
		return nil
	}
	if len(p.LeadSources) > 0 || len(p.MarketingChannels) > 0 {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagRisk,
		Severity:       domain.SeverityMedium,
		Issue:          "Growth target without acquisition channels",
		Detail:         "A growth target was stated but no lead sources or marketing channels are on record.",
		Recommendation: "Name the channels expected to carry the target and start measuring them.",
	}
}

// rulePriorityWithoutDiagnosis: a stated priority with no diagnosed
// problems behind it.
func rulePriorityWithoutDiagnosis(p *domain.Profile, _ domain.Stage, _ domain.StageData) *domain.Flag {
	if strings.TrimSpace(p.StatedPriority) == "" || len(p.DiagnosedProblems) > 0 {
		return nil
	}
	return &domain.Flag{
		Category:       domain.FlagStructural,
		Severity:       domain.SeverityMedium,
		Issue:          "Priority without diagnosis",
		Detail:         "A priority was stated before any problem was diagnosed, so it may address a symptom rather than a cause.",
		Recommendation: "Revisit the priority once the diagnosis is confirmed.",
	}
}
