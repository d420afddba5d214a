package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as the input trees see it.
// Modifiers are not tracked; tcell reports control combinations as distinct
// keys already.
type Key struct {
	Key tcell.Key
	Ch  rune
}

// Rune returns the Key for a plain character.
func Rune(r rune) Key { return Key{Key: tcell.KeyRune, Ch: r} }

// KeyFromTcellEvent converts a tcell key event.
// Every key that is handed to a Tree or processor should come from here so
// that non-rune keys never carry a stray Ch.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Rune(e.Rune())
	}
	return Key{Key: e.Key()}
}

// ToDebugString renders the key for log output.
func (k Key) ToDebugString() string {
	return fmt.Sprintf("(%s (%d),'%s'(%d))", tcell.KeyNames[k.Key], int(k.Key), string(k.Ch), int(k.Ch))
}
