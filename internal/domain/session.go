// Package domain defines the core data model for discovery interviews.
package domain

import (
	"time"
)

// Role tags a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TranscriptEntry is a single utterance in the interview transcript.
type TranscriptEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Phase identifies one stage of the fixed interview sequence.
type Phase string

const (
	PhaseWelcome    Phase = "welcome"
	PhaseCompany    Phase = "company"
	PhaseGTM        Phase = "gtm"
	PhaseMetrics    Phase = "metrics"
	PhaseChallenges Phase = "challenges"
	PhaseDiagnosis  Phase = "diagnosis"
	PhaseReport     Phase = "report"
)

// Session is the full per-interview state. It is passed whole on every
// call and returned whole; its JSON shape is the wire contract between
// turns, so clients can round-trip it losslessly.
type Session struct {
	InterviewID        string            `json:"interviewId"`
	Phase              Phase             `json:"phase"`
	PhaseTurns         int               `json:"phaseTurns"`
	TotalTurns         int               `json:"totalTurns"`
	IntroductionDone   bool              `json:"introductionDone"`
	DiagnosisPresented bool              `json:"diagnosisPresented"`
	DiagnosisValidated bool              `json:"diagnosisValidated"`
	Transcript         []TranscriptEntry `json:"transcript"`
	Profile            Profile           `json:"profile"`
	Confidence         int               `json:"confidence"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// NewSession creates an empty session positioned at the first phase.
func NewSession(interviewID string, now time.Time) Session {
	return Session{
		InterviewID: interviewID,
		Phase:       PhaseWelcome,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AppendUser appends a user utterance to the transcript.
// Transcript order is strictly chronological: the user entry for a turn
// always precedes the assistant reply to it.
func (s *Session) AppendUser(content string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{Role: RoleUser, Content: content})
}

// AppendAssistant appends an assistant reply to the transcript.
func (s *Session) AppendAssistant(content string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{Role: RoleAssistant, Content: content})
}

// UserEntries returns the user-side half of the transcript in order.
func (s *Session) UserEntries() []TranscriptEntry {
	var out []TranscriptEntry
	for _, e := range s.Transcript {
		if e.Role == RoleUser {
			out = append(out, e)
		}
	}
	return out
}
