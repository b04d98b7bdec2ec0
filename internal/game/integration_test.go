// internal/game/integration_test.go
//
// Full round through the real HTTP client against a scripted predictor:
// start → two answers → prediction → wrong-guess feedback.

package game

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mindreader/internal/api"
)

// scriptedPredictor plays a fixed two-question round.
func scriptedPredictor(t *testing.T) (http.Handler, *[]api.FeedbackRequest) {
	t.Helper()
	var feedbacks []api.FeedbackRequest
	step := 0

	r := chi.NewRouter()
	r.Post("/start", func(w http.ResponseWriter, req *http.Request) {
		step = 1
		writeJSON(t, w, map[string]any{
			"success": true,
			"question": map[string]any{
				"id": "vivant", "text": "Est-ce vivant ?",
				"question_number": 1, "total_questions": 2,
			},
		})
	})
	r.Post("/answer", func(w http.ResponseWriter, req *http.Request) {
		switch step {
		case 1:
			step = 2
			writeJSON(t, w, map[string]any{
				"success": true,
				"question": map[string]any{
					"id": "animal", "text": "Est-ce un animal ?",
					"question_number": 2, "total_questions": 2,
				},
			})
		default:
			writeJSON(t, w, map[string]any{
				"success":    true,
				"done":       true,
				"prediction": "elephant",
				"candidates": []string{"elephant", "lion", "elephant", "tiger"},
			})
		}
	})
	r.Post("/feedback", func(w http.ResponseWriter, req *http.Request) {
		var fb api.FeedbackRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&fb))
		feedbacks = append(feedbacks, fb)
		writeJSON(t, w, map[string]any{"success": true, "message": "Merci !"})
	})
	return r, &feedbacks
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestFullRoundAgainstScriptedPredictor(t *testing.T) {
	handler, feedbacks := scriptedPredictor(t)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	view := &fakeView{}
	c := New(api.New(srv.URL), view)
	ctx := context.Background()

	c.StartGame(ctx)
	require.Equal(t, ScreenQuestion, c.Screen())
	assert.Equal(t, 2, c.Session().TotalQuestions)

	yes := true
	c.AnswerQuestion(ctx, &yes)
	require.Equal(t, ScreenQuestion, c.Screen())
	assert.Equal(t, "animal", c.Session().Current.ID)

	c.AnswerQuestion(ctx, nil)
	require.Equal(t, ScreenPrediction, c.Screen())
	assert.Equal(t, "elephant", view.prediction)
	assert.Equal(t, []string{"lion", "tiger"}, view.alternatives)

	// The guess was wrong; the user picks the first alternative and
	// then corrects it by hand anyway.
	c.SelectAlternative(0)
	assert.Equal(t, "lion", c.Session().Prediction)

	c.GiveFeedback(ctx, false)
	require.True(t, c.InputVisible())
	view.actual = "girafe"
	c.SubmitActualWord(ctx)

	require.Len(t, *feedbacks, 1)
	fb := (*feedbacks)[0]
	assert.False(t, fb.Correct)
	assert.Equal(t, "lion", fb.Predicted)
	assert.Equal(t, "girafe", fb.ActualWord)
	assert.True(t, view.inputHidden)

	c.RestartGame()
	assert.Equal(t, ScreenWelcome, c.Screen())
	assert.Equal(t, NewSession(), c.Session())
}
