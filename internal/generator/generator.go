// Package generator defines the contract with the external
// natural-language generation service and the local safeguards around it:
// option validation, per-phase default option sets and the deterministic
// fallback used when the service is unavailable.
package generator

import (
	"context"
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Option bounds. Lists outside 2..6 valid entries are replaced wholesale
// by the phase default set.
const (
	MinOptions  = 2
	MaxOptions  = 6
	MaxKeyLen   = 40
	MaxLabelLen = 120
)

// Fact is one confirmed or missing profile field in the turn request.
type Fact struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// TurnRequest is what the core hands the generation service for one turn.
type TurnRequest struct {
	InterviewID  string       `json:"interviewId"`
	Phase        domain.Phase `json:"phase"`
	PhaseName    string       `json:"phaseName"`
	Instructions string       `json:"instructions"`
	Transcript   string       `json:"transcript"`
	Confirmed    []Fact       `json:"confirmed,omitempty"`
	Missing      []Fact       `json:"missing,omitempty"`
	Language     string       `json:"language"`
	UserMessage  string       `json:"userMessage"`
}

// Option is a selectable answer offered to the stakeholder.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Signals carries the one-way milestone booleans the generator may raise.
type Signals struct {
	IntroductionDone   bool `json:"introductionDone"`
	DiagnosisPresented bool `json:"diagnosisPresented"`
	DiagnosisValidated bool `json:"diagnosisValidated"`
}

// TurnResult is the structured output of the generation service. Updates
// values are either a string or a list of strings; anything else is
// dropped by the merge layer.
type TurnResult struct {
	Message string         `json:"message"`
	Options []Option       `json:"options"`
	Updates map[string]any `json:"updates"`
	Signals Signals        `json:"signals"`
}

// Generator produces the next interview turn. Implementations must be safe
// for concurrent use. A non-nil error (or an empty message) makes the
// engine fall back to a deterministic turn; it never aborts the session.
type Generator interface {
	NextTurn(ctx context.Context, req TurnRequest) (*TurnResult, error)
}

// defaultOptions is the phase-appropriate fallback option set, used both by
// the fallback generator and whenever the service returns a malformed list.
var defaultOptions = map[domain.Phase][]Option{
	domain.PhaseWelcome: {
		{Key: "ready", Label: "Let's get started"},
		{Key: "how_it_works", Label: "How does this work?"},
	},
	domain.PhaseCompany: {
		{Key: "b2b_saas", Label: "We sell B2B software subscriptions"},
		{Key: "services", Label: "We sell consulting or services"},
		{Key: "ecommerce", Label: "We sell products online"},
		{Key: "other_model", Label: "Something else"},
	},
	domain.PhaseGTM: {
		{Key: "inbound", Label: "Mostly inbound: content, search, referrals"},
		{Key: "outbound", Label: "Mostly outbound: cold outreach, sales-led"},
		{Key: "mixed", Label: "A mix of both"},
	},
	domain.PhaseMetrics: {
		{Key: "know_numbers", Label: "I can share our numbers"},
		{Key: "rough_numbers", Label: "I only have rough figures"},
		{Key: "no_numbers", Label: "We don't track this yet"},
	},
	domain.PhaseChallenges: {
		{Key: "leads", Label: "Not enough qualified leads"},
		{Key: "conversion", Label: "Leads don't convert"},
		{Key: "retention", Label: "Customers don't stick around"},
		{Key: "capacity", Label: "We can't keep up with demand"},
	},
	domain.PhaseDiagnosis: {
		{Key: "agree", Label: "Yes, that matches my view"},
		{Key: "partially", Label: "Partially - let me correct something"},
		{Key: "disagree", Label: "No, I see it differently"},
	},
	domain.PhaseReport: {
		{Key: "show_report", Label: "Show me the report"},
		{Key: "ask_question", Label: "I have one more question"},
	},
}

// DefaultOptions returns the fallback option set for a phase.
func DefaultOptions(ph domain.Phase) []Option {
	opts, ok := defaultOptions[ph]
	if !ok {
		opts = defaultOptions[domain.PhaseWelcome]
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// SanitizeOptions validates and clamps an option list returned by the
// generation service. Entries are trimmed; entries with an empty or
// over-long key or label are dropped; at most MaxOptions survive. If fewer
// than MinOptions remain, the whole list is replaced by the phase default
// set.
func SanitizeOptions(ph domain.Phase, opts []Option) []Option {
	var valid []Option
	for _, o := range opts {
		o.Key = strings.TrimSpace(o.Key)
		o.Label = strings.TrimSpace(o.Label)
		if o.Key == "" || len(o.Key) > MaxKeyLen {
			continue
		}
		if o.Label == "" || len(o.Label) > MaxLabelLen {
			continue
		}
		valid = append(valid, o)
		if len(valid) == MaxOptions {
			break
		}
	}
	if len(valid) < MinOptions {
		return DefaultOptions(ph)
	}
	return valid
}
