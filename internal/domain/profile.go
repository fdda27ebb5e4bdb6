package domain

// Profile is the structured accumulation of facts learned about the
// interviewee's business. The set of fields is closed: updates naming
// anything else are dropped by the merge layer. Scalars count as present
// when non-empty after trimming; lists when non-empty. Lists only grow
// within a session.
type Profile struct {
	// Company identity and operations.
	CompanyName    string `json:"companyName,omitempty"`
	BusinessModel  string `json:"businessModel,omitempty"`
	Stage          string `json:"stage,omitempty"`
	Revenue        string `json:"revenue,omitempty"`
	TeamSize       string `json:"teamSize,omitempty"`
	Funding        string `json:"funding,omitempty"`
	Industry       string `json:"industry,omitempty"`
	TargetCustomer string `json:"targetCustomer,omitempty"`
	PricingModel   string `json:"pricingModel,omitempty"`
	SalesMotion    string `json:"salesMotion,omitempty"`

	// Background.
	Website     string   `json:"website,omitempty"`
	FoundedYear string   `json:"foundedYear,omitempty"`
	Location    string   `json:"location,omitempty"`
	TeamRoles   []string `json:"teamRoles,omitempty"`
	HiringPlans string   `json:"hiringPlans,omitempty"`

	// Product.
	ProductDescription string   `json:"productDescription,omitempty"`
	ValueProposition   string   `json:"valueProposition,omitempty"`
	ProductStage       string   `json:"productStage,omitempty"`
	KeyFeatures        []string `json:"keyFeatures,omitempty"`
	Competitors        []string `json:"competitors,omitempty"`
	Differentiators    []string `json:"differentiators,omitempty"`
	MarketSize         string   `json:"marketSize,omitempty"`

	// Customers and unit economics.
	CustomerCount    string   `json:"customerCount,omitempty"`
	CustomerSegments []string `json:"customerSegments,omitempty"`
	ARPA             string   `json:"arpa,omitempty"`
	MRR              string   `json:"mrr,omitempty"`
	ARR              string   `json:"arr,omitempty"`
	DealSize         string   `json:"dealSize,omitempty"`
	LTV              string   `json:"ltv,omitempty"`
	CAC              string   `json:"cac,omitempty"`
	ChurnRate        string   `json:"churnRate,omitempty"`
	ConversionRate   string   `json:"conversionRate,omitempty"`
	GrowthRate       string   `json:"growthRate,omitempty"`

	// Targets and resources.
	GrowthTarget string   `json:"growthTarget,omitempty"`
	Budget       string   `json:"budget,omitempty"`
	Runway       string   `json:"runway,omitempty"`
	BurnRate     string   `json:"burnRate,omitempty"`
	ToolSpend    string   `json:"toolSpend,omitempty"`
	Tools        []string `json:"tools,omitempty"`
	TechStack    []string `json:"techStack,omitempty"`

	// Go-to-market.
	LeadSources       []string `json:"leadSources,omitempty"`
	MarketingChannels []string `json:"marketingChannels,omitempty"`
	ContentStrategy   string   `json:"contentStrategy,omitempty"`
	OutboundChannels  []string `json:"outboundChannels,omitempty"`
	SalesCycle        string   `json:"salesCycle,omitempty"`
	SalesTeamSize     string   `json:"salesTeamSize,omitempty"`
	WinRate           string   `json:"winRate,omitempty"`
	PipelineSize      string   `json:"pipelineSize,omitempty"`
	FounderClosing    string   `json:"founderClosing,omitempty"`

	// Challenges and history.
	Bottleneck        string   `json:"bottleneck,omitempty"`
	PastExperiments   []string `json:"pastExperiments,omitempty"`
	TeamChallenges    []string `json:"teamChallenges,omitempty"`
	RetentionStrategy string   `json:"retentionStrategy,omitempty"`

	// Diagnosis milestones.
	DiagnosedProblems []string `json:"diagnosedProblems,omitempty"`
	StatedPriority    string   `json:"statedPriority,omitempty"`
}
