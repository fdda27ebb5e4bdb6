package interview

import (
	"testing"

	"github.com/ashureev/founder-compass/internal/domain"
	"github.com/ashureev/founder-compass/internal/profile"
)

func TestSequenceIsLinearWithOneTerminal(t *testing.T) {
	t.Parallel()

	seq := Sequence()
	if len(seq) != 7 {
		t.Fatalf("sequence has %d phases, want 7", len(seq))
	}
	if seq[0] != domain.PhaseWelcome {
		t.Fatalf("sequence starts at %q", seq[0])
	}
	if seq[len(seq)-1] != domain.PhaseReport {
		t.Fatalf("sequence ends at %q", seq[len(seq)-1])
	}

	seen := map[domain.Phase]bool{}
	for _, ph := range seq {
		if seen[ph] {
			t.Fatalf("phase %q appears twice", ph)
		}
		seen[ph] = true
		if _, ok := Definition(ph); !ok {
			t.Fatalf("phase %q has no definition", ph)
		}
	}

	last, _ := Definition(domain.PhaseReport)
	if last.Next != "" {
		t.Fatalf("terminal phase has successor %q", last.Next)
	}
}

func TestChecklistNamesExistInCatalog(t *testing.T) {
	t.Parallel()

	for _, ph := range Sequence() {
		def, _ := Definition(ph)
		for _, name := range def.Checklist {
			if _, ok := profile.Lookup(name); !ok {
				t.Fatalf("phase %q checklist references unknown field %q", ph, name)
			}
		}
	}
}

func TestMilestonePhasesHaveNoChecklist(t *testing.T) {
	t.Parallel()

	for _, ph := range []domain.Phase{domain.PhaseWelcome, domain.PhaseDiagnosis, domain.PhaseReport} {
		def, _ := Definition(ph)
		if len(def.Checklist) != 0 {
			t.Fatalf("phase %q should be milestone/narrative gated, has checklist %v", ph, def.Checklist)
		}
	}
}
