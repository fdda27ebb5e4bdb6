package interview

import (
	"context"
	"log/slog"
	"time"

	"github.com/ashureev/founder-compass/internal/analysis"
	"github.com/ashureev/founder-compass/internal/domain"
	"github.com/ashureev/founder-compass/internal/generator"
	"github.com/ashureev/founder-compass/internal/profile"
)

// CanAdvance evaluates the transition guard for the session's current
// phase:
//
//  1. the phase's minimum turn count must be spent;
//  2. the terminal phase never advances;
//  3. milestone-gated phases require their flags (and, for diagnosis, a
//     non-empty diagnosedProblems field);
//  4. every other phase requires its full checklist present - an
//     unconditional AND, deliberately, so the interview cannot be rushed
//     through on partial answers.
func CanAdvance(s domain.Session) bool {
	def, ok := Definition(s.Phase)
	if !ok || def.Next == "" {
		return false
	}
	if s.PhaseTurns < def.MinTurns {
		return false
	}

	switch s.Phase {
	case domain.PhaseWelcome:
		return s.IntroductionDone
	case domain.PhaseDiagnosis:
		return s.DiagnosisPresented && s.DiagnosisValidated &&
			profile.Present(&s.Profile, "diagnosedProblems")
	}

	for _, name := range def.Checklist {
		if !profile.Present(&s.Profile, name) {
			return false
		}
	}
	return true
}

// Advance moves the session to the next phase and resets the in-phase turn
// counter, if the guard passes. Calling it when the guard fails is a safe
// no-op, never an error.
func Advance(s domain.Session) domain.Session {
	if !CanAdvance(s) {
		return s
	}
	def, _ := Definition(s.Phase)
	s.Phase = def.Next
	s.PhaseTurns = 0
	return s
}

// Engine orchestrates one interview turn: it merges generator output into
// the session, evaluates phase advancement, and rescores confidence. It
// holds no per-session state - the full session value goes in and a new
// one comes out, so concurrent sessions never share memory.
type Engine struct {
	gen      generator.Generator
	fallback generator.Fallback
	bench    domain.BenchmarkTable
	now      func() time.Time
}

// NewEngine creates an engine. A nil generator means every turn uses the
// deterministic fallback.
func NewEngine(gen generator.Generator, bench domain.BenchmarkTable) *Engine {
	e := &Engine{gen: gen, bench: bench, now: time.Now}
	if e.gen == nil {
		e.gen = e.fallback
	}
	return e
}

// TurnReply is what the transport layer returns to the client alongside
// the updated session.
type TurnReply struct {
	Message    string             `json:"message"`
	Options    []generator.Option `json:"options"`
	Phase      domain.Phase       `json:"phase"`
	PhaseName  string             `json:"phaseName"`
	Confidence int                `json:"confidence"`
	Completed  bool               `json:"completed"`
}

// Open produces the opening assistant message for a freshly created
// session without consuming a user turn.
func (e *Engine) Open(ctx context.Context, s domain.Session) (domain.Session, TurnReply) {
	res := e.generate(ctx, s, "")
	s.AppendAssistant(res.Message)
	s.Confidence = profile.Score(&s.Profile)
	s.UpdatedAt = e.now()
	return s, e.reply(s, res)
}

// Turn runs the full turn lifecycle. Advancement is evaluated twice: once
// before generation, reflecting state carried over from the previous turn,
// and once after this turn's updates and milestone signals are applied, so
// an answer can trigger advancement within its own turn. No failure in the
// external generator aborts the turn; the worst case is a fallback reply.
func (e *Engine) Turn(ctx context.Context, s domain.Session, message string) (domain.Session, TurnReply) {
	s = Advance(s)

	s.AppendUser(message)
	s.TotalTurns++
	s.PhaseTurns++

	res := e.generate(ctx, s, message)

	s.Profile = profile.ApplyUpdates(s.Profile, res.Updates)
	// Milestone flags are one-way: a signal can raise them, never clear.
	s.IntroductionDone = s.IntroductionDone || res.Signals.IntroductionDone
	s.DiagnosisPresented = s.DiagnosisPresented || res.Signals.DiagnosisPresented
	s.DiagnosisValidated = s.DiagnosisValidated || res.Signals.DiagnosisValidated

	s = Advance(s)

	s.Confidence = profile.Score(&s.Profile)
	s.AppendAssistant(res.Message)
	s.UpdatedAt = e.now()

	return s, e.reply(s, res)
}

// Report assembles the structured inputs for the external narrative step:
// resolved stage, feasibility flags, and the benchmark scorecard with its
// chart and dashboard views. A missing benchmark stage degrades to empty
// benchmark-dependent sections.
func (e *Engine) Report(s domain.Session) domain.Report {
	stage := analysis.ResolveStage(s.Profile.Stage)
	data := e.bench[stage]

	scorecard := analysis.BuildScorecard(s.Profile, data)
	return domain.Report{
		InterviewID: s.InterviewID,
		Stage:       stage,
		StageLabel:  data.Label,
		Confidence:  profile.Score(&s.Profile),
		Profile:     s.Profile,
		Transcript:  s.Transcript,
		Flags:       analysis.Feasibility(s.Profile, stage, data),
		Scorecard:   scorecard,
		Chart:       analysis.BuildChartSeries(scorecard, data),
		Dashboard:   analysis.BuildDashboard(scorecard, data),
	}
}

// generate calls the external generator and falls back to the
// deterministic turn on any error or empty result. Options are always
// sanitized against the phase default set.
func (e *Engine) generate(ctx context.Context, s domain.Session, message string) *generator.TurnResult {
	req := e.buildRequest(s, message)

	res, err := e.gen.NextTurn(ctx, req)
	if err != nil || res == nil || res.Message == "" {
		if err != nil {
			slog.Warn("generator unavailable, using fallback", "interview_id", s.InterviewID, "phase", s.Phase, "error", err)
		}
		res, _ = e.fallback.NextTurn(ctx, req)
	}
	res.Options = generator.SanitizeOptions(s.Phase, res.Options)
	return res
}

func (e *Engine) buildRequest(s domain.Session, message string) generator.TurnRequest {
	def, _ := Definition(s.Phase)

	var confirmed, missing []generator.Fact
	for _, name := range def.Checklist {
		f, ok := profile.Lookup(name)
		if !ok {
			continue
		}
		if f.Present(&s.Profile) {
			confirmed = append(confirmed, generator.Fact{Name: name, Label: f.Label, Value: f.Value(&s.Profile)})
		} else {
			missing = append(missing, generator.Fact{Name: name, Label: f.Label})
		}
	}

	return generator.TurnRequest{
		InterviewID:  s.InterviewID,
		Phase:        s.Phase,
		PhaseName:    def.Name,
		Instructions: def.Instructions,
		Transcript:   RenderTranscript(s.Transcript),
		Confirmed:    confirmed,
		Missing:      missing,
		Language:     analysis.DetectLanguage(s.Transcript),
		UserMessage:  message,
	}
}

func (e *Engine) reply(s domain.Session, res *generator.TurnResult) TurnReply {
	def, _ := Definition(s.Phase)
	return TurnReply{
		Message:    res.Message,
		Options:    res.Options,
		Phase:      s.Phase,
		PhaseName:  def.Name,
		Confidence: s.Confidence,
		Completed:  s.Phase == domain.PhaseReport,
	}
}
