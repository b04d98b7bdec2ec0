// internal/game/types.go
//
// Core type definitions for the game controller.
// Defines:
//   - Screen: which of the four screens is current.
//   - Session: mutable client-held state for one game round.

package game

import "github.com/robalobadob/mindreader/internal/api"

// Screen identifies the active screen of the client.
// The flow is cyclic: Welcome → Question → Prediction → Feedback → Welcome.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenQuestion
	ScreenPrediction
	ScreenFeedback
)

// String reports a short name, mostly for logs.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenQuestion:
		return "question"
	case ScreenPrediction:
		return "prediction"
	case ScreenFeedback:
		return "feedback"
	}
	return "unknown"
}

// fallbackTotalQuestions is only shown before the first server contact;
// every question payload carries the authoritative total.
const fallbackTotalQuestions = 15

// maxAlternatives caps how many alternative candidates are offered.
const maxAlternatives = 3

// Session holds the state of a single game round.
// It lives in the controller, is reset on start/restart, and is never
// persisted anywhere.
type Session struct {
	Current        *api.Question // question being shown, nil outside a round
	QuestionNumber int           // 1-based index of the current question
	TotalQuestions int           // server-provided total, fallback before first contact
	Prediction     string        // current predicted word ("" before prediction)
}

// NewSession returns a Session at its initial defaults.
func NewSession() Session {
	return Session{
		QuestionNumber: 1,
		TotalQuestions: fallbackTotalQuestions,
	}
}

// ProgressPercent converts a question position into a progress bar width.
// Clamped to [0,100] so an overshooting tiebreaker round never renders
// past the end of the bar.
func ProgressPercent(number, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := 100 * float64(number) / float64(total)
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}

// FilterAlternatives keeps candidates that are non-empty and distinct from
// the primary prediction, preserving server order, capped at maxAlternatives.
func FilterAlternatives(primary string, candidates []string) []string {
	alts := make([]string, 0, maxAlternatives)
	for _, c := range candidates {
		if c == "" || c == primary {
			continue
		}
		alts = append(alts, c)
		if len(alts) == maxAlternatives {
			break
		}
	}
	return alts
}
