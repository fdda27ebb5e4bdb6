// Package interview implements the phase state machine and the per-turn
// orchestration of a discovery interview.
package interview

import (
	"github.com/ashureev/founder-compass/internal/domain"
)

// PhaseDef is the static configuration for one interview phase.
type PhaseDef struct {
	ID   domain.Phase
	Name string
	// Next is the phase entered on advancement; empty marks the terminal
	// phase.
	Next domain.Phase
	// MinTurns is the number of turns that must elapse in this phase
	// before advancement is considered at all.
	MinTurns int
	// Checklist names the profile fields that must all be present before
	// the phase can end. Milestone-gated phases have no checklist.
	Checklist []string
	// Instructions is the phase briefing handed to the question generator.
	Instructions string
}

// phases is the fixed, linear interview sequence. It is data, not a graph:
// every phase has at most one successor and "report" is terminal.
var phases = map[domain.Phase]PhaseDef{
	domain.PhaseWelcome: {
		ID:       domain.PhaseWelcome,
		Name:     "Welcome",
		Next:     domain.PhaseCompany,
		MinTurns: 1,
		Instructions: "Introduce yourself, explain the interview briefly and ask " +
			"what the company does. Mark the introduction done once greeted.",
	},
	domain.PhaseCompany: {
		ID:        domain.PhaseCompany,
		Name:      "Company basics",
		Next:      domain.PhaseGTM,
		MinTurns:  4,
		Checklist: []string{"businessModel", "stage", "revenue", "teamSize", "funding"},
		Instructions: "Establish the fundamentals: business model, growth stage, " +
			"revenue, team size and funding situation. One topic per question.",
	},
	domain.PhaseGTM: {
		ID:        domain.PhaseGTM,
		Name:      "Go-to-market",
		Next:      domain.PhaseMetrics,
		MinTurns:  3,
		Checklist: []string{"salesMotion", "pricingModel", "leadSources", "conversionRate", "salesCycle"},
		Instructions: "Understand how they sell: motion, pricing, where leads come " +
			"from, how well they convert and how long deals take.",
	},
	domain.PhaseMetrics: {
		ID:        domain.PhaseMetrics,
		Name:      "Metrics",
		Next:      domain.PhaseChallenges,
		MinTurns:  3,
		Checklist: []string{"churnRate", "cac", "growthTarget", "budget"},
		Instructions: "Collect the numbers: churn, acquisition cost, the growth " +
			"target and the budget available to reach it.",
	},
	domain.PhaseChallenges: {
		ID:        domain.PhaseChallenges,
		Name:      "Challenges",
		Next:      domain.PhaseDiagnosis,
		MinTurns:  2,
		Checklist: []string{"bottleneck", "diagnosedProblems", "statedPriority"},
		Instructions: "Dig into what is holding them back, what has been tried " +
			"already, and what they would fix first.",
	},
	domain.PhaseDiagnosis: {
		ID:       domain.PhaseDiagnosis,
		Name:     "Diagnosis",
		Next:     domain.PhaseReport,
		MinTurns: 2,
		Instructions: "Present the diagnosed problems back to the stakeholder and " +
			"ask them to confirm or correct. Mark the diagnosis presented, and " +
			"validated once they agree.",
	},
	domain.PhaseReport: {
		ID:           domain.PhaseReport,
		Name:         "Report",
		MinTurns:     0,
		Instructions: "The interview is complete; the report is being prepared.",
	},
}

// Definition returns the static definition for a phase.
func Definition(ph domain.Phase) (PhaseDef, bool) {
	def, ok := phases[ph]
	return def, ok
}

// Sequence returns the phase ids in interview order.
func Sequence() []domain.Phase {
	out := []domain.Phase{domain.PhaseWelcome}
	for {
		def := phases[out[len(out)-1]]
		if def.Next == "" {
			return out
		}
		out = append(out, def.Next)
	}
}
