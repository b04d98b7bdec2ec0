// internal/game/view.go
//
// View abstraction between the controller and whatever renders it.
// The controller never touches a terminal (or any other surface)
// directly; a View implementation owns presentation, the controller
// owns state and flow.

package game

import "github.com/robalobadob/mindreader/internal/api"

// View is implemented per render target (the shipped one is the ANSI
// terminal view in internal/tui; tests use an in-memory fake).
type View interface {
	// ShowScreen makes s the current screen.
	ShowScreen(s Screen)

	// RenderQuestion draws the question text and the progress indicator
	// for position number/total. Pure render step, no side effects on
	// game state.
	RenderQuestion(q *api.Question, number, total int)

	// RenderPrediction draws the predicted word plus the already-filtered
	// alternative candidates. An empty alternatives slice hides the panel.
	RenderPrediction(word string, alternatives []string)

	// RenderPredictedWord redraws only the predicted word, after the user
	// picked an alternative.
	RenderPredictedWord(word string)

	// RenderFeedback draws the closing screen. When correct is false the
	// free-text input for the actual word is revealed.
	RenderFeedback(correct bool)

	// SetControlsEnabled reflects the controller's input lock visually.
	SetControlsEnabled(enabled bool)

	// ShowMessage and ShowError surface server messages and error text.
	ShowMessage(msg string)
	ShowError(msg string)

	// ActualWord reads the current content of the free-text input.
	ActualWord() string

	// HideActualWordInput hides the free-text input after a successful
	// submission.
	HideActualWordInput()

	// ResetProgress puts the progress indicator back to its initial
	// position (question 1 of total, 0% width).
	ResetProgress(total int)
}
