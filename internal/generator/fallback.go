package generator

import (
	"context"
	"fmt"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Fallback is the deterministic generator used when the external service
// is unreachable or returns an unusable result. It asks about the first
// checklist field still missing for the current phase, in the language the
// engine detected, and never fails.
type Fallback struct{}

var _ Generator = Fallback{}

// NextTurn derives a question purely from the request; the error is always
// nil so the turn can proceed without the external service.
func (Fallback) NextTurn(_ context.Context, req TurnRequest) (*TurnResult, error) {
	return &TurnResult{
		Message: fallbackMessage(req),
		Options: DefaultOptions(req.Phase),
	}, nil
}

func fallbackMessage(req TurnRequest) string {
	de := req.Language == "de"

	if len(req.Missing) > 0 {
		label := req.Missing[0].Label
		if de {
			return fmt.Sprintf("Danke! Erzählen Sie mir als Nächstes etwas zu: %s.", label)
		}
		return fmt.Sprintf("Thanks! Next, could you tell me about: %s?", label)
	}

	switch req.Phase {
	case domain.PhaseWelcome:
		if de {
			return "Willkommen! Ich stelle Ihnen einige Fragen zu Ihrem Unternehmen. Womit verdienen Sie heute Geld?"
		}
		return "Welcome! I'll ask you a few questions about your business. What does your company do today?"
	case domain.PhaseDiagnosis:
		if de {
			return "Passt diese Einschätzung aus Ihrer Sicht, oder möchten Sie etwas korrigieren?"
		}
		return "Does this assessment match your view, or would you like to correct anything?"
	case domain.PhaseReport:
		if de {
			return "Vielen Dank - Ihr Bericht wird jetzt erstellt."
		}
		return "Thank you - your report is being prepared now."
	default:
		if de {
			return "Verstanden. Gibt es noch etwas, das ich zu diesem Thema wissen sollte?"
		}
		return "Got it. Is there anything else I should know about this topic?"
	}
}
