// internal/game/keymap.go
//
// Keyboard mapping for the four screens. The mapping is a pure function
// from (screen, key, input visibility, input lock) to an Action, so the
// terminal layer only decodes bytes into Keys and dispatches whatever
// comes back.
//
// Bindings:
//   - Welcome:    Enter/Space → start.
//   - Question:   ←/n → no, →/o/y → yes, Enter → don't know.
//                 All keys are dropped while a request is in flight.
//   - Prediction: o/y → guessed right, n → guessed wrong,
//                 1–3 → pick that alternative.
//   - Feedback:   Enter submits the actual word while the input is
//                 visible; otherwise Enter/Space restarts.

package game

// KeyCode classifies non-rune keys the client cares about.
type KeyCode int

const (
	KeyRune KeyCode = iota // printable rune, see Key.Rune
	KeyEnter
	KeyLeft
	KeyRight
	KeyBackspace
	KeyEsc
	KeyCtrlC
)

// Key is one decoded keystroke.
type Key struct {
	Code KeyCode
	Rune rune // set when Code == KeyRune
}

// ActionKind enumerates what the controller should do for a keystroke.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStart
	ActionAnswerYes
	ActionAnswerNo
	ActionAnswerUnknown
	ActionFeedbackCorrect
	ActionFeedbackWrong
	ActionPickAlternative
	ActionSubmitWord
	ActionRestart
)

// Action is a mapped keystroke; Index is only meaningful for
// ActionPickAlternative (0-based alternative position).
type Action struct {
	Kind  ActionKind
	Index int
}

// MapKey resolves a keystroke against the current screen state.
func MapKey(screen Screen, k Key, inputVisible, controlsEnabled bool) Action {
	switch screen {
	case ScreenWelcome:
		if k.Code == KeyEnter || isRune(k, ' ') {
			return Action{Kind: ActionStart}
		}

	case ScreenQuestion:
		// Prevents a duplicate submission while one is outstanding.
		if !controlsEnabled {
			return Action{}
		}
		switch {
		case k.Code == KeyLeft || isRune(k, 'n', 'N'):
			return Action{Kind: ActionAnswerNo}
		case k.Code == KeyRight || isRune(k, 'o', 'O', 'y', 'Y'):
			return Action{Kind: ActionAnswerYes}
		case k.Code == KeyEnter:
			return Action{Kind: ActionAnswerUnknown}
		}

	case ScreenPrediction:
		switch {
		case isRune(k, 'o', 'O', 'y', 'Y'):
			return Action{Kind: ActionFeedbackCorrect}
		case isRune(k, 'n', 'N'):
			return Action{Kind: ActionFeedbackWrong}
		case k.Code == KeyRune && k.Rune >= '1' && k.Rune <= '3':
			return Action{Kind: ActionPickAlternative, Index: int(k.Rune - '1')}
		}

	case ScreenFeedback:
		if inputVisible {
			if k.Code == KeyEnter {
				return Action{Kind: ActionSubmitWord}
			}
			return Action{}
		}
		if k.Code == KeyEnter || isRune(k, ' ') {
			return Action{Kind: ActionRestart}
		}
	}
	return Action{}
}

// isRune reports whether k is one of the given printable runes.
func isRune(k Key, runes ...rune) bool {
	if k.Code != KeyRune {
		return false
	}
	for _, r := range runes {
		if k.Rune == r {
			return true
		}
	}
	return false
}
