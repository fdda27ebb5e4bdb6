package domain

// Stage is one of the four canonical company-maturity buckets used to
// select benchmark reference values.
type Stage string

const (
	StagePreSeedIdea         Stage = "pre_seed_idea"
	StageSeedStartup         Stage = "seed_startup"
	StageEarlyScale          Stage = "early_scale"
	StageExpansionEnterprise Stage = "expansion_enterprise"
)

// FlagCategory classifies a feasibility finding.
type FlagCategory string

const (
	FlagContradiction FlagCategory = "contradiction"
	FlagAntiPattern   FlagCategory = "anti_pattern"
	FlagRisk          FlagCategory = "risk"
	FlagStructural    FlagCategory = "structural"
)

// Severity grades a feasibility flag.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Flag is an advisory annotation produced by the feasibility analyzer.
// Flags never mutate the profile and are never treated as errors.
type Flag struct {
	Category       FlagCategory `json:"category"`
	Severity       Severity     `json:"severity"`
	Issue          string       `json:"issue"`
	Detail         string       `json:"detail"`
	Recommendation string       `json:"recommendation"`
}

// Assessment is the qualitative tag on a scorecard row.
type Assessment string

const (
	AssessmentStrong       Assessment = "strong"
	AssessmentAboveMedian  Assessment = "above_median"
	AssessmentBelowMedian  Assessment = "below_median"
	AssessmentCritical     Assessment = "critical"
	AssessmentNotDisclosed Assessment = "not_disclosed"
)

// ScorecardRow compares one user metric against its stage benchmark.
// Value and Score are nil when the metric was not disclosed or could not
// be parsed as a number.
type ScorecardRow struct {
	Metric     string     `json:"metric"`
	Label      string     `json:"label"`
	Unit       string     `json:"unit,omitempty"`
	RawValue   string     `json:"rawValue,omitempty"`
	Value      *float64   `json:"value,omitempty"`
	Median     float64    `json:"median"`
	Good       float64    `json:"good"`
	Bad        float64    `json:"bad"`
	Score      *int       `json:"score,omitempty"`
	Assessment Assessment `json:"assessment"`
	Source     string     `json:"source,omitempty"`
}

// ChartPoint is one metric in the normalized comparison series. Both
// values share the 0-100 scale so user and benchmark bars are comparable.
type ChartPoint struct {
	Metric      string `json:"metric"`
	Label       string `json:"label"`
	UserScore   int    `json:"userScore"`
	MedianScore int    `json:"medianScore"`
}

// DashboardMetric is the 90-day view for one disclosed metric: the
// current value moved 60% of the distance toward the "good" reference.
type DashboardMetric struct {
	Metric      string  `json:"metric"`
	Label       string  `json:"label"`
	Unit        string  `json:"unit,omitempty"`
	Current     float64 `json:"current"`
	Target90Day float64 `json:"target90Day"`
	Good        float64 `json:"good"`
}

// Benchmark holds the stage reference values for one metric. Good and Bad
// are optional in the source data; when absent they are derived from the
// median (x2 / x0.5, direction-aware).
type Benchmark struct {
	Median        float64
	Good          *float64
	Bad           *float64
	Unit          string
	Source        string
	LowerIsBetter bool
}

// StageData is the per-stage slice of the benchmark table.
type StageData struct {
	Label            string
	ToolSpendCeiling float64
	Metrics          map[string]Benchmark
}

// BenchmarkTable maps a canonical stage to its reference data. An empty
// table is valid: benchmark-dependent outputs are simply omitted.
type BenchmarkTable map[Stage]StageData

// Report bundles everything the external narrative generator consumes.
type Report struct {
	InterviewID string            `json:"interviewId"`
	Stage       Stage             `json:"stage"`
	StageLabel  string            `json:"stageLabel,omitempty"`
	Confidence  int               `json:"confidence"`
	Profile     Profile           `json:"profile"`
	Transcript  []TranscriptEntry `json:"transcript"`
	Flags       []Flag            `json:"flags"`
	Scorecard   []ScorecardRow    `json:"scorecard"`
	Chart       []ChartPoint      `json:"chart"`
	Dashboard   []DashboardMetric `json:"dashboard"`
}
