package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/ashureev/founder-compass/internal/domain"
)

func TestFallbackAsksForFirstMissingField(t *testing.T) {
	t.Parallel()

	res, err := Fallback{}.NextTurn(context.Background(), TurnRequest{
		Phase:    domain.PhaseCompany,
		Language: "en",
		Missing: []Fact{
			{Name: "revenue", Label: "monthly revenue"},
			{Name: "teamSize", Label: "team size"},
		},
	})
	if err != nil {
		t.Fatalf("NextTurn: %v", err)
	}
	if !strings.Contains(res.Message, "monthly revenue") {
		t.Fatalf("message %q does not ask about the first missing field", res.Message)
	}
	if len(res.Options) < MinOptions {
		t.Fatalf("fallback returned %d options", len(res.Options))
	}
}

func TestFallbackGerman(t *testing.T) {
	t.Parallel()

	res, err := Fallback{}.NextTurn(context.Background(), TurnRequest{
		Phase:    domain.PhaseCompany,
		Language: "de",
		Missing:  []Fact{{Name: "funding", Label: "Finanzierung"}},
	})
	if err != nil {
		t.Fatalf("NextTurn: %v", err)
	}
	if !strings.Contains(res.Message, "Finanzierung") {
		t.Fatalf("message %q does not mention the missing field", res.Message)
	}
	if !strings.Contains(res.Message, "Danke") {
		t.Fatalf("message %q is not German", res.Message)
	}
}

func TestFallbackPhaseMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase domain.Phase
		want  string
	}{
		{domain.PhaseWelcome, "Welcome"},
		{domain.PhaseDiagnosis, "assessment"},
		{domain.PhaseReport, "report"},
		{domain.PhaseGTM, "anything else"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.phase), func(t *testing.T) {
			t.Parallel()
			res, err := Fallback{}.NextTurn(context.Background(), TurnRequest{Phase: tc.phase, Language: "en"})
			if err != nil {
				t.Fatalf("NextTurn: %v", err)
			}
			if !strings.Contains(res.Message, tc.want) {
				t.Fatalf("message %q, want substring %q", res.Message, tc.want)
			}
			if len(res.Options) == 0 {
				t.Fatal("no options")
			}
		})
	}
}
