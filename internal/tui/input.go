// internal/tui/input.go
//
// Keystroke decoding for the raw-mode terminal.
// Turns the byte stream from stdin into game.Key values: printable runes,
// Enter, Backspace, Ctrl+C, and the arrow-key escape sequences the
// question screen binds to Oui/Non.

package tui

import (
	"bufio"
	"io"

	"github.com/robalobadob/mindreader/internal/game"
)

// KeyReader decodes keystrokes from a raw byte stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r for key decoding.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks for the next keystroke.
// Escape sequences arrive in a single read, so a lone ESC byte with an
// empty buffer is reported as KeyEsc rather than waiting for more input.
func (k *KeyReader) ReadKey() (game.Key, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return game.Key{}, err
	}

	switch {
	case b == 0x03:
		return game.Key{Code: game.KeyCtrlC}, nil
	case b == '\r' || b == '\n':
		return game.Key{Code: game.KeyEnter}, nil
	case b == 0x7f || b == 0x08:
		return game.Key{Code: game.KeyBackspace}, nil
	case b == 0x1b:
		return k.readEscape()
	case b < 0x80:
		return game.Key{Code: game.KeyRune, Rune: rune(b)}, nil
	}

	// Multibyte UTF-8: put the lead byte back and decode a full rune.
	_ = k.r.UnreadByte()
	r, _, err := k.r.ReadRune()
	if err != nil {
		return game.Key{}, err
	}
	return game.Key{Code: game.KeyRune, Rune: r}, nil
}

// readEscape resolves what follows an ESC byte: CSI arrow sequences map
// to KeyLeft/KeyRight, anything else collapses to KeyEsc.
func (k *KeyReader) readEscape() (game.Key, error) {
	if k.r.Buffered() == 0 {
		return game.Key{Code: game.KeyEsc}, nil
	}
	b, err := k.r.ReadByte()
	if err != nil {
		return game.Key{}, err
	}
	if b != '[' {
		return game.Key{Code: game.KeyEsc}, nil
	}
	b, err = k.r.ReadByte()
	if err != nil {
		return game.Key{}, err
	}
	switch b {
	case 'C':
		return game.Key{Code: game.KeyRight}, nil
	case 'D':
		return game.Key{Code: game.KeyLeft}, nil
	}
	return game.Key{Code: game.KeyEsc}, nil
}
