// internal/tui/app.go
//
// Event loop wiring keyboard, controller, and view together.
// Responsibilities:
//   - Put the terminal into raw mode for the lifetime of the loop.
//   - Route keystrokes: free-text entry while the actual-word input is
//     visible, game.MapKey actions otherwise.
//   - Handle exit ('q' outside text entry, Ctrl+C, EOF).
//
// One keystroke is handled at a time; network calls run to completion
// before the next key is read, which preserves the
// disable → await → mutate → render → enable ordering.

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/robalobadob/mindreader/internal/game"
)

// App owns the client event loop.
type App struct {
	ctrl *game.Controller
	view *View
	keys *KeyReader
	in   io.Reader
}

// NewApp wires a controller and view to an input stream (normally stdin).
func NewApp(ctrl *game.Controller, view *View, in io.Reader) *App {
	return &App{ctrl: ctrl, view: view, keys: NewKeyReader(in), in: in}
}

// Run shows the welcome screen and processes keys until the user quits
// or the input stream ends.
func (a *App) Run() error {
	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		old, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(f.Fd()), old) }()
	}

	ctx := context.Background()
	a.ctrl.RestartGame()

	for {
		k, err := a.keys.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if k.Code == game.KeyCtrlC {
			return nil
		}

		typing := a.ctrl.Screen() == game.ScreenFeedback && a.ctrl.InputVisible()
		if typing {
			// Runes feed the input buffer; Enter falls through to MapKey.
			switch k.Code {
			case game.KeyRune:
				a.view.AppendInput(k.Rune)
				continue
			case game.KeyBackspace:
				a.view.EraseInput()
				continue
			}
		} else if k.Code == game.KeyRune && (k.Rune == 'q' || k.Rune == 'Q') {
			return nil
		}

		a.dispatch(ctx, game.MapKey(a.ctrl.Screen(), k, a.ctrl.InputVisible(), a.ctrl.ControlsEnabled()))
	}
}

// dispatch executes one mapped action against the controller.
func (a *App) dispatch(ctx context.Context, act game.Action) {
	switch act.Kind {
	case game.ActionStart:
		a.ctrl.StartGame(ctx)
	case game.ActionAnswerYes:
		yes := true
		a.ctrl.AnswerQuestion(ctx, &yes)
	case game.ActionAnswerNo:
		no := false
		a.ctrl.AnswerQuestion(ctx, &no)
	case game.ActionAnswerUnknown:
		a.ctrl.AnswerQuestion(ctx, nil)
	case game.ActionFeedbackCorrect:
		a.ctrl.GiveFeedback(ctx, true)
	case game.ActionFeedbackWrong:
		a.ctrl.GiveFeedback(ctx, false)
	case game.ActionPickAlternative:
		a.ctrl.SelectAlternative(act.Index)
	case game.ActionSubmitWord:
		a.ctrl.SubmitActualWord(ctx)
	case game.ActionRestart:
		a.ctrl.RestartGame()
	}
}
