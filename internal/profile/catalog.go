// Package profile implements the field catalog, the merge engine, and the
// confidence scorer over domain.Profile values.
package profile

import (
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Kind distinguishes scalar fields from list fields.
type Kind int

const (
	Scalar Kind = iota
	List
)

// Confidence tier weights. Core identity fields carry the most routine
// weight, milestone fields the most individual weight.
const (
	WeightCore      = 4
	WeightSecondary = 2
	WeightMilestone = 6
)

// Field describes one catalog entry and how to reach it on a profile.
type Field struct {
	Name   string
	Kind   Kind
	Weight int
	Label  string

	scalar func(*domain.Profile) *string
	list   func(*domain.Profile) *[]string
}

// Present reports whether the field counts as present on p: scalars must
// be non-empty after trimming, lists must be non-empty.
func (f *Field) Present(p *domain.Profile) bool {
	if f.Kind == List {
		return len(*f.list(p)) > 0
	}
	return strings.TrimSpace(*f.scalar(p)) != ""
}

// Value returns the scalar value, or a comma-joined rendering for lists.
// Used when summarizing confirmed facts for the generator.
func (f *Field) Value(p *domain.Profile) string {
	if f.Kind == List {
		return strings.Join(*f.list(p), ", ")
	}
	return *f.scalar(p)
}

func scalarField(name, label string, weight int, get func(*domain.Profile) *string) Field {
	return Field{Name: name, Kind: Scalar, Weight: weight, Label: label, scalar: get}
}

func listField(name, label string, weight int, get func(*domain.Profile) *[]string) Field {
	return Field{Name: name, Kind: List, Weight: weight, Label: label, list: get}
}

// catalog is the closed, ordered set of profile fields. Every field name
// referenced anywhere else (phase checklists, metric mappings, rules) must
// exist here; unknown names are treated as absent everywhere.
var catalog = []Field{
	scalarField("companyName", "Company name", WeightCore, func(p *domain.Profile) *string { return &p.CompanyName }),
	scalarField("businessModel", "Business model", WeightCore, func(p *domain.Profile) *string { return &p.BusinessModel }),
	scalarField("stage", "Growth stage", WeightCore, func(p *domain.Profile) *string { return &p.Stage }),
	scalarField("revenue", "Revenue", WeightCore, func(p *domain.Profile) *string { return &p.Revenue }),
	scalarField("teamSize", "Team size", WeightCore, func(p *domain.Profile) *string { return &p.TeamSize }),
	scalarField("funding", "Funding", WeightCore, func(p *domain.Profile) *string { return &p.Funding }),
	scalarField("industry", "Industry", WeightCore, func(p *domain.Profile) *string { return &p.Industry }),
	scalarField("targetCustomer", "Target customer", WeightCore, func(p *domain.Profile) *string { return &p.TargetCustomer }),
	scalarField("pricingModel", "Pricing model", WeightCore, func(p *domain.Profile) *string { return &p.PricingModel }),
	scalarField("salesMotion", "Sales motion", WeightCore, func(p *domain.Profile) *string { return &p.SalesMotion }),

	scalarField("website", "Website", WeightSecondary, func(p *domain.Profile) *string { return &p.Website }),
	scalarField("foundedYear", "Founded", WeightSecondary, func(p *domain.Profile) *string { return &p.FoundedYear }),
	scalarField("location", "Location", WeightSecondary, func(p *domain.Profile) *string { return &p.Location }),
	listField("teamRoles", "Team roles", WeightSecondary, func(p *domain.Profile) *[]string { return &p.TeamRoles }),
	scalarField("hiringPlans", "Hiring plans", WeightSecondary, func(p *domain.Profile) *string { return &p.HiringPlans }),

	scalarField("productDescription", "Product description", WeightSecondary, func(p *domain.Profile) *string { return &p.ProductDescription }),
	scalarField("valueProposition", "Value proposition", WeightSecondary, func(p *domain.Profile) *string { return &p.ValueProposition }),
	scalarField("productStage", "Product stage", WeightSecondary, func(p *domain.Profile) *string { return &p.ProductStage }),
	listField("keyFeatures", "Key features", WeightSecondary, func(p *domain.Profile) *[]string { return &p.KeyFeatures }),
	listField("competitors", "Competitors", WeightSecondary, func(p *domain.Profile) *[]string { return &p.Competitors }),
	listField("differentiators", "Differentiators", WeightSecondary, func(p *domain.Profile) *[]string { return &p.Differentiators }),
	scalarField("marketSize", "Market size", WeightSecondary, func(p *domain.Profile) *string { return &p.MarketSize }),

	scalarField("customerCount", "Customer count", WeightSecondary, func(p *domain.Profile) *string { return &p.CustomerCount }),
	listField("customerSegments", "Customer segments", WeightSecondary, func(p *domain.Profile) *[]string { return &p.CustomerSegments }),
	scalarField("arpa", "ARPA", WeightSecondary, func(p *domain.Profile) *string { return &p.ARPA }),
	scalarField("mrr", "MRR", WeightSecondary, func(p *domain.Profile) *string { return &p.MRR }),
	scalarField("arr", "ARR", WeightSecondary, func(p *domain.Profile) *string { return &p.ARR }),
	scalarField("dealSize", "Average deal size", WeightSecondary, func(p *domain.Profile) *string { return &p.DealSize }),
	scalarField("ltv", "LTV", WeightSecondary, func(p *domain.Profile) *string { return &p.LTV }),
	scalarField("cac", "CAC", WeightSecondary, func(p *domain.Profile) *string { return &p.CAC }),
	scalarField("churnRate", "Churn rate", WeightSecondary, func(p *domain.Profile) *string { return &p.ChurnRate }),
	scalarField("conversionRate", "Conversion rate", WeightSecondary, func(p *domain.Profile) *string { return &p.ConversionRate }),
	scalarField("growthRate", "Growth rate", WeightSecondary, func(p *domain.Profile) *string { return &p.GrowthRate }),

	scalarField("growthTarget", "Growth target", WeightSecondary, func(p *domain.Profile) *string { return &p.GrowthTarget }),
	scalarField("budget", "Budget", WeightSecondary, func(p *domain.Profile) *string { return &p.Budget }),
	scalarField("runway", "Runway", WeightSecondary, func(p *domain.Profile) *string { return &p.Runway }),
	scalarField("burnRate", "Burn rate", WeightSecondary, func(p *domain.Profile) *string { return &p.BurnRate }),
	scalarField("toolSpend", "Tool spend", WeightSecondary, func(p *domain.Profile) *string { return &p.ToolSpend }),
	listField("tools", "Tools", WeightSecondary, func(p *domain.Profile) *[]string { return &p.Tools }),
	listField("techStack", "Tech stack", WeightSecondary, func(p *domain.Profile) *[]string { return &p.TechStack }),

	listField("leadSources", "Lead sources", WeightSecondary, func(p *domain.Profile) *[]string { return &p.LeadSources }),
	listField("marketingChannels", "Marketing channels", WeightSecondary, func(p *domain.Profile) *[]string { return &p.MarketingChannels }),
	scalarField("contentStrategy", "Content strategy", WeightSecondary, func(p *domain.Profile) *string { return &p.ContentStrategy }),
	listField("outboundChannels", "Outbound channels", WeightSecondary, func(p *domain.Profile) *[]string { return &p.OutboundChannels }),
	scalarField("salesCycle", "Sales cycle", WeightSecondary, func(p *domain.Profile) *string { return &p.SalesCycle }),
	scalarField("salesTeamSize", "Sales team size", WeightSecondary, func(p *domain.Profile) *string { return &p.SalesTeamSize }),
	scalarField("winRate", "Win rate", WeightSecondary, func(p *domain.Profile) *string { return &p.WinRate }),
	scalarField("pipelineSize", "Pipeline size", WeightSecondary, func(p *domain.Profile) *string { return &p.PipelineSize }),
	scalarField("founderClosing", "Founder closing deals", WeightSecondary, func(p *domain.Profile) *string { return &p.FounderClosing }),

	scalarField("bottleneck", "Stated bottleneck", WeightSecondary, func(p *domain.Profile) *string { return &p.Bottleneck }),
	listField("pastExperiments", "Past experiments", WeightSecondary, func(p *domain.Profile) *[]string { return &p.PastExperiments }),
	listField("teamChallenges", "Team challenges", WeightSecondary, func(p *domain.Profile) *[]string { return &p.TeamChallenges }),
	scalarField("retentionStrategy", "Retention strategy", WeightSecondary, func(p *domain.Profile) *string { return &p.RetentionStrategy }),

	listField("diagnosedProblems", "Diagnosed problems", WeightMilestone, func(p *domain.Profile) *[]string { return &p.DiagnosedProblems }),
	scalarField("statedPriority", "Stated priority", WeightMilestone, func(p *domain.Profile) *string { return &p.StatedPriority }),
}

var (
	byName   = make(map[string]*Field, len(catalog))
	maxScore int
)

func init() {
	for i := range catalog {
		f := &catalog[i]
		byName[f.Name] = f
		maxScore += f.Weight
	}
}

// Lookup returns the catalog entry for name. Unknown names return ok=false
// and must be treated as "absent", never as an error.
func Lookup(name string) (*Field, bool) {
	f, ok := byName[name]
	return f, ok
}

// Names returns all field names in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i := range catalog {
		out[i] = catalog[i].Name
	}
	return out
}

// Present reports whether the named field is present on p. Unknown names
// are absent.
func Present(p *domain.Profile, name string) bool {
	f, ok := byName[name]
	if !ok {
		return false
	}
	return f.Present(p)
}

// Missing filters names down to the ones not yet present on p, preserving
// order. Unknown names are skipped entirely.
func Missing(p *domain.Profile, names []string) []string {
	var out []string
	for _, n := range names {
		f, ok := byName[n]
		if !ok {
			continue
		}
		if !f.Present(p) {
			out = append(out, n)
		}
	}
	return out
}
