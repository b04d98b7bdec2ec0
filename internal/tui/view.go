// internal/tui/view.go
//
// ANSI terminal implementation of the game.View interface.
// Responsibilities:
//   - Draw the four screens with plain escape codes (no TUI framework).
//   - Keep the actual-word input buffer and echo keystrokes into it.
//   - Clamp and draw the progress bar for the question screen.
//
// Notes:
//   - Output goes through an io.Writer so tests can render into a buffer.
//   - The terminal runs in raw mode, hence the explicit "\r\n" endings.

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/mindreader/internal/api"
	"github.com/robalobadob/mindreader/internal/game"
)

const (
	ansiClear = "\x1b[2J\x1b[H"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiRed   = "\x1b[31m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"

	progressCells = 20
)

// View renders the game into a terminal.
type View struct {
	out io.Writer

	input        []rune
	inputVisible bool
	number       int
	total        int
}

// NewView constructs a View writing to out.
func NewView(out io.Writer) *View {
	return &View{out: out, number: 1}
}

// ShowScreen records the screen change. Only Welcome draws immediately;
// the other screens are drawn by their Render* calls.
func (v *View) ShowScreen(s game.Screen) {
	if s != game.ScreenWelcome {
		return
	}
	fmt.Fprint(v.out, ansiClear)
	fmt.Fprintf(v.out, "%s✦ LE VOYANT ✦%s\r\n\r\n", ansiBold, ansiReset)
	fmt.Fprint(v.out, "Pensez à un mot… je vais lire dans vos pensées.\r\n\r\n")
	fmt.Fprintf(v.out, "%s[Entrée] commencer · [q] quitter%s\r\n", ansiDim, ansiReset)
}

// RenderQuestion draws the progress line and the question text.
func (v *View) RenderQuestion(q *api.Question, number, total int) {
	v.number, v.total = number, total
	pct := game.ProgressPercent(number, total)

	fmt.Fprint(v.out, ansiClear)
	fmt.Fprintf(v.out, "%sQuestion %d sur %d%s   %s %.0f%%\r\n\r\n",
		ansiBold, number, total, ansiReset, progressBar(pct), pct)
	if q.IsTiebreaker {
		fmt.Fprintf(v.out, "%sQuestion bonus !%s\r\n", ansiCyan, ansiReset)
	}
	fmt.Fprintf(v.out, "« %s »\r\n\r\n", q.Text)
	fmt.Fprintf(v.out, "%s← / n : Non      → / o : Oui      Entrée : Je ne sais pas%s\r\n",
		ansiDim, ansiReset)
}

// RenderPrediction draws the guessed word (uppercased) and the
// alternatives panel. No alternatives → the panel is absent.
func (v *View) RenderPrediction(word string, alternatives []string) {
	fmt.Fprint(v.out, ansiClear)
	fmt.Fprint(v.out, "Je lis dans vos pensées…\r\n\r\n")
	v.RenderPredictedWord(word)
	if len(alternatives) > 0 {
		fmt.Fprint(v.out, "\r\nOu peut-être :\r\n")
		for i, alt := range alternatives {
			fmt.Fprintf(v.out, "  %d. %s\r\n", i+1, alt)
		}
	}
	fmt.Fprintf(v.out, "\r\n%so : c'est ça · n : raté · 1-3 : choisir une alternative%s\r\n",
		ansiDim, ansiReset)
}

// RenderPredictedWord redraws just the word, after an alternative pick.
func (v *View) RenderPredictedWord(word string) {
	fmt.Fprintf(v.out, "   %s✨ %s ✨%s\r\n", ansiBold, strings.ToUpper(word), ansiReset)
}

// RenderFeedback draws the closing screen; on a wrong guess it reveals
// the actual-word input and resets its buffer.
func (v *View) RenderFeedback(correct bool) {
	fmt.Fprint(v.out, ansiClear)
	if correct {
		v.inputVisible = false
		fmt.Fprint(v.out, "🎉 J'ai encore gagné !\r\n")
		fmt.Fprint(v.out, "Merci d'avoir joué.\r\n\r\n")
		fmt.Fprintf(v.out, "%s[Entrée] rejouer · [q] quitter%s\r\n", ansiDim, ansiReset)
		return
	}
	v.inputVisible = true
	v.input = v.input[:0]
	fmt.Fprint(v.out, "Zut… je me suis trompé.\r\n")
	fmt.Fprint(v.out, "Quel était votre mot ?\r\n\r\n")
	fmt.Fprint(v.out, "> ")
}

// SetControlsEnabled shows a thinking line while input is locked.
func (v *View) SetControlsEnabled(enabled bool) {
	if !enabled {
		fmt.Fprintf(v.out, "%sLe voyant réfléchit…%s\r\n", ansiDim, ansiReset)
	}
}

// ShowMessage prints a server-provided display message.
func (v *View) ShowMessage(msg string) {
	fmt.Fprintf(v.out, "\r\n%s\r\n", msg)
}

// ShowError prints an error line without changing the screen.
func (v *View) ShowError(msg string) {
	fmt.Fprintf(v.out, "\r\n%s⚠ %s%s\r\n", ansiRed, msg, ansiReset)
}

// ActualWord reads the free-text buffer.
func (v *View) ActualWord() string { return string(v.input) }

// HideActualWordInput hides the input and shows the restart hint.
func (v *View) HideActualWordInput() {
	v.inputVisible = false
	fmt.Fprintf(v.out, "\r\n%s[Entrée] rejouer · [q] quitter%s\r\n", ansiDim, ansiReset)
}

// ResetProgress puts the progress indicator back to its initial state.
func (v *View) ResetProgress(total int) {
	v.number, v.total = 1, total
}

// AppendInput adds a typed rune to the actual-word buffer and echoes it
// (raw mode disables terminal echo).
func (v *View) AppendInput(r rune) {
	if !v.inputVisible {
		return
	}
	v.input = append(v.input, r)
	fmt.Fprintf(v.out, "%c", r)
}

// EraseInput removes the last rune from the buffer, erasing it on screen.
func (v *View) EraseInput() {
	if !v.inputVisible || len(v.input) == 0 {
		return
	}
	v.input = v.input[:len(v.input)-1]
	fmt.Fprint(v.out, "\b \b")
}

// progressBar renders pct (0–100) as a fixed-width bar.
func progressBar(pct float64) string {
	filled := int(pct/100*progressCells + 0.5)
	if filled > progressCells {
		filled = progressCells
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", progressCells-filled) + "]"
}
