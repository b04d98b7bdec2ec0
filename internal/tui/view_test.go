// internal/tui/view_test.go

package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mindreader/internal/api"
)

func TestRenderQuestionShowsPositionAndText(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)

	v.RenderQuestion(&api.Question{ID: "1", Text: "Is it alive?"}, 1, 7)

	out := buf.String()
	assert.Contains(t, out, "Question 1 sur 7")
	assert.Contains(t, out, "« Is it alive? »")
	assert.Contains(t, out, "14%", "1/7 rounds to 14%")
	assert.NotContains(t, out, "Question bonus")
}

func TestRenderQuestionTiebreaker(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)

	v.RenderQuestion(&api.Question{ID: "x", Text: "Encore ?", IsTiebreaker: true}, 16, 18)

	assert.Contains(t, buf.String(), "Question bonus")
}

func TestRenderPredictionUppercasesAndNumbersAlternatives(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)

	v.RenderPrediction("elephant", []string{"lion", "tiger"})

	out := buf.String()
	assert.Contains(t, out, "ELEPHANT")
	assert.Contains(t, out, "1. lion")
	assert.Contains(t, out, "2. tiger")
	assert.Contains(t, out, "Ou peut-être")
}

func TestRenderPredictionHidesEmptyAlternatives(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)

	v.RenderPrediction("cat", nil)

	assert.Contains(t, buf.String(), "CAT")
	assert.NotContains(t, buf.String(), "Ou peut-être")
}

func TestActualWordInputBuffer(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)

	// Hidden input: keystrokes are ignored.
	v.AppendInput('x')
	assert.Equal(t, "", v.ActualWord())

	v.RenderFeedback(false)
	require.Contains(t, buf.String(), "Quel était votre mot ?")

	v.AppendInput('a')
	v.AppendInput('b')
	v.AppendInput('c')
	v.EraseInput()
	assert.Equal(t, "ab", v.ActualWord())

	v.HideActualWordInput()
	v.AppendInput('z')
	assert.Equal(t, "ab", v.ActualWord(), "hidden input ignores keystrokes")
}

func TestRenderFeedbackCorrectResetsInputVisibility(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)
	v.RenderFeedback(false)
	v.AppendInput('a')

	v.RenderFeedback(true)
	assert.Contains(t, buf.String(), "J'ai encore gagné")
	v.AppendInput('b')
	assert.Equal(t, "a", v.ActualWord(), "buffer untouched once input is hidden")
}

func TestProgressBarClamps(t *testing.T) {
	assert.Equal(t, progressCells+2, len([]rune(progressBar(100))))
	assert.Equal(t, progressBar(100), progressBar(250), "over 100% renders a full bar")
	full := progressBar(100)
	for _, r := range full[1 : len(full)-1] {
		assert.NotEqual(t, '░', r)
	}
}
