// internal/game/controller.go
//
// Game controller state machine for a single mind-reading round.
// Responsibilities:
//   - Drive the screen cycle: Welcome → Question → Prediction → Feedback → Welcome.
//   - Own the Session and keep its numbering in sync with server payloads.
//   - Call the prediction service for start/answer/feedback and translate
//     the replies into renders.
//   - Guard against double submissions with an input lock that is released
//     on every exit path (success, handled error, panic).
//
// Notes:
//   - The service is an interface so tests can script it; api.Client is
//     the real implementation.
//   - The "correct guess" feedback call is fire-and-forget: a failure is
//     logged and never blocks the congratulatory screen.

package game

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mindreader/internal/api"
)

// Service is the prediction backend as seen by the controller.
type Service interface {
	Start(ctx context.Context) (*api.StartResponse, error)
	Answer(ctx context.Context, req api.AnswerRequest) (*api.AnswerResponse, error)
	Feedback(ctx context.Context, req api.FeedbackRequest) (*api.FeedbackResponse, error)
}

// User-facing copy. The game speaks French, like the service it talks to.
const (
	msgNetworkError   = "Erreur de connexion au voyant. Veuillez réessayer."
	msgMalformedStart = "Réponse inattendue du serveur. Veuillez réessayer."
	msgAnswerRejected = "Le voyant n'a pas compris. Veuillez réessayer."
	msgFeedbackFailed = "Impossible d'envoyer votre réponse. Veuillez réessayer."
	msgWordRequired   = "Veuillez entrer un mot avant de valider."
)

// Controller is the client-side state machine. It is not safe for
// concurrent use: all methods are expected to run on the single
// event-handling goroutine, one user action at a time.
type Controller struct {
	svc  Service
	view View

	// QuestionDelay is a cosmetic pause before rendering the next
	// question. Zero in tests.
	QuestionDelay time.Duration

	session      Session
	screen       Screen
	alternatives []string
	inputVisible bool
	controls     bool
}

// New constructs a Controller showing the Welcome screen with an
// unlocked input state.
func New(svc Service, view View) *Controller {
	return &Controller{
		svc:      svc,
		view:     view,
		session:  NewSession(),
		screen:   ScreenWelcome,
		controls: true,
	}
}

// Screen reports the active screen.
func (c *Controller) Screen() Screen { return c.screen }

// Session returns a copy of the current session state.
func (c *Controller) Session() Session { return c.session }

// ControlsEnabled reports whether user input is currently accepted.
// The key mapping consults this to drop keys while a request is in flight.
func (c *Controller) ControlsEnabled() bool { return c.controls }

// InputVisible reports whether the actual-word free-text input is shown.
func (c *Controller) InputVisible() bool { return c.inputVisible }

// Alternatives returns the alternative candidates currently on offer.
func (c *Controller) Alternatives() []string { return c.alternatives }

// setControls flips the input lock and mirrors it on the view.
func (c *Controller) setControls(enabled bool) {
	c.controls = enabled
	c.view.SetControlsEnabled(enabled)
}

// syncProgress adopts numbering from a question payload. A field is only
// overwritten when the server sent a positive value; otherwise the prior
// value stays (the total is server-authoritative once seen, and must
// never be reset to something non-positive).
func (c *Controller) syncProgress(q *api.Question) {
	if q.QuestionNumber > 0 {
		c.session.QuestionNumber = q.QuestionNumber
	}
	if q.TotalQuestions > 0 {
		c.session.TotalQuestions = q.TotalQuestions
	}
}

// StartGame resets the session and asks the service for the first
// question.
//
// Outcomes:
//   - success with a question → Question screen, question rendered.
//   - transport failure or malformed/rejected reply → error surfaced,
//     screen stays Welcome.
//
// The input lock is released on every path.
func (c *Controller) StartGame(ctx context.Context) {
	c.session = NewSession()
	c.alternatives = nil
	c.inputVisible = false
	c.setControls(false)
	defer c.setControls(true)

	resp, err := c.svc.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("start request failed")
		c.view.ShowError(msgNetworkError)
		return
	}
	if !resp.Success || resp.Question == nil {
		log.Error().Str("server_error", resp.Error).Msg("start rejected or malformed")
		if resp.Error != "" {
			c.view.ShowError(resp.Error)
		} else {
			c.view.ShowError(msgMalformedStart)
		}
		return
	}

	c.session.Current = resp.Question
	c.syncProgress(resp.Question)
	c.screen = ScreenQuestion
	c.view.ShowScreen(ScreenQuestion)
	c.DisplayQuestion(resp.Question)
}

// AnswerQuestion submits the user's answer for the current question.
// answer semantics: true = yes, false = no, nil = don't know (sent as
// JSON null, never omitted).
//
// Outcomes:
//   - no current question → no-op.
//   - success:false → server error shown, screen unchanged.
//   - done:true → straight to the Prediction screen with the guess.
//   - otherwise → next question adopted and rendered after the cosmetic
//     delay.
func (c *Controller) AnswerQuestion(ctx context.Context, answer *bool) {
	q := c.session.Current
	if q == nil {
		return
	}
	c.setControls(false)
	defer c.setControls(true)

	resp, err := c.svc.Answer(ctx, api.AnswerRequest{QuestionID: q.ID, Answer: answer})
	if err != nil {
		log.Error().Err(err).Str("question_id", q.ID).Msg("answer request failed")
		c.view.ShowError(msgNetworkError)
		return
	}
	if !resp.Success {
		log.Warn().Str("server_error", resp.Error).Msg("answer rejected")
		if resp.Error != "" {
			c.view.ShowError(resp.Error)
		} else {
			c.view.ShowError(msgAnswerRejected)
		}
		return
	}

	if resp.Done {
		c.DisplayPrediction(resp.Prediction, resp.Candidates)
		if resp.Message != "" {
			c.view.ShowMessage(resp.Message)
		}
		return
	}

	if resp.Question == nil {
		log.Error().Msg("answer reply carried neither done nor a question")
		c.view.ShowError(msgMalformedStart)
		return
	}

	c.session.Current = resp.Question
	c.syncProgress(resp.Question)
	if c.QuestionDelay > 0 {
		time.Sleep(c.QuestionDelay)
	}
	c.DisplayQuestion(resp.Question)
}

// DisplayQuestion is a pure render step: progress indicator plus question
// text. It never calls the network.
func (c *Controller) DisplayQuestion(q *api.Question) {
	c.view.RenderQuestion(q, c.session.QuestionNumber, c.session.TotalQuestions)
}

// DisplayPrediction moves to the Prediction screen and renders the
// guessed word with up to three alternative candidates (server order,
// primary and empty entries filtered out).
func (c *Controller) DisplayPrediction(word string, candidates []string) {
	c.screen = ScreenPrediction
	c.session.Prediction = word
	c.alternatives = FilterAlternatives(word, candidates)
	c.view.ShowScreen(ScreenPrediction)
	c.view.RenderPrediction(word, c.alternatives)
}

// SelectAlternative makes the i-th offered alternative the current
// prediction and redraws the word. Purely local; the server is not
// re-contacted. Out-of-range indices are ignored.
func (c *Controller) SelectAlternative(i int) {
	if i < 0 || i >= len(c.alternatives) {
		return
	}
	c.session.Prediction = c.alternatives[i]
	c.view.RenderPredictedWord(c.session.Prediction)
}

// GiveFeedback reacts to the user's verdict on the prediction.
//
// correct: the feedback POST is fire-and-forget — a failure is logged
// and never blocks the congratulatory screen.
//
// incorrect: the actual-word input is revealed; nothing is sent until
// the user submits the word.
func (c *Controller) GiveFeedback(ctx context.Context, correct bool) {
	if correct {
		req := api.FeedbackRequest{
			Correct:    true,
			Predicted:  c.session.Prediction,
			ActualWord: c.session.Prediction,
		}
		go func(ctx context.Context) {
			if _, err := c.svc.Feedback(ctx, req); err != nil {
				log.Warn().Err(err).Msg("feedback send failed")
			}
		}(context.WithoutCancel(ctx))
		c.inputVisible = false
	} else {
		c.inputVisible = true
	}

	c.screen = ScreenFeedback
	c.view.ShowScreen(ScreenFeedback)
	c.view.RenderFeedback(correct)
}

// SubmitActualWord reads the free-text input, validates it, and reports
// the word the user actually thought of.
//
// Outcomes:
//   - blank/whitespace input → validation prompt, no network call.
//   - transport failure or rejection → generic error, input stays visible.
//   - success → optional server message shown, input hidden.
func (c *Controller) SubmitActualWord(ctx context.Context) {
	actual := strings.TrimSpace(c.view.ActualWord())
	if actual == "" {
		c.view.ShowError(msgWordRequired)
		return
	}

	resp, err := c.svc.Feedback(ctx, api.FeedbackRequest{
		Correct:    false,
		Predicted:  c.session.Prediction,
		ActualWord: actual,
	})
	if err != nil {
		log.Error().Err(err).Msg("actual-word feedback failed")
		c.view.ShowError(msgFeedbackFailed)
		return
	}
	if !resp.Success {
		log.Warn().Str("server_error", resp.Error).Msg("actual-word feedback rejected")
		c.view.ShowError(msgFeedbackFailed)
		return
	}

	if resp.Message != "" {
		c.view.ShowMessage(resp.Message)
	}
	c.inputVisible = false
	c.view.HideActualWordInput()
}

// RestartGame resets the session to its defaults, puts the progress
// visuals back to question 1 of the fallback total, and returns to the
// Welcome screen.
func (c *Controller) RestartGame() {
	c.session = NewSession()
	c.alternatives = nil
	c.inputVisible = false
	c.screen = ScreenWelcome
	c.view.ResetProgress(c.session.TotalQuestions)
	c.view.ShowScreen(ScreenWelcome)
}
