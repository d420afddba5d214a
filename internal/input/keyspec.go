package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence as written in configuration, e.g. "f", "<c-l>" or
// "<space>q".
type Keyspec string

var (
	identifierToKey = map[string]Key{}
	keyToIdentifier = map[Key]string{}
)

func init() {
	for i := 0; i < 26; i++ {
		id := "c-" + string(rune('a'+i))
		k := Key{Key: tcell.KeyCtrlA + tcell.Key(i)}
		identifierToKey[id] = k
		keyToIdentifier[k] = id
	}
	// named keys take precedence over the control aliases tcell shares them
	// with (e.g. <cr> and <c-m>)
	named := []struct {
		id  string
		key Key
	}{
		{"c-space", Key{Key: tcell.KeyCtrlSpace}},
		{"c-bs", Key{Key: tcell.KeyBackspace}},
		{"space", Rune(' ')},
		{"cr", Key{Key: tcell.KeyEnter}},
		{"tab", Key{Key: tcell.KeyTab}},
		{"esc", Key{Key: tcell.KeyESC}},
		{"del", Key{Key: tcell.KeyDelete}},
		{"bs", Key{Key: tcell.KeyBackspace2}},
		{"left", Key{Key: tcell.KeyLeft}},
		{"right", Key{Key: tcell.KeyRight}},
		{"up", Key{Key: tcell.KeyUp}},
		{"down", Key{Key: tcell.KeyDown}},
	}
	for _, n := range named {
		identifierToKey[n.id] = n.key
		keyToIdentifier[n.key] = n.id
	}
}

// ConfigKeyspecToKeys converts a key sequence specification to the keys it
// describes.
// Special keys are written in angle brackets, anything else is taken rune by
// rune.
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0, len(spec))
	var special []rune
	inSpecial := false

	for pos, r := range string(spec) {
		switch {
		case r == '<':
			if inSpecial {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			inSpecial = true
			special = special[:0]

		case r == '>':
			if !inSpecial {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			inSpecial = false
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key (%w)", string(special), err)
			}
			result = append(result, key)

		case inSpecial:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special = append(special, r)

		default:
			result = append(result, Rune(r))
		}
	}
	if inSpecial {
		return nil, fmt.Errorf("unclosed special context in '%s'", spec)
	}

	return result, nil
}

// KeyIdentifierToKey converts a special key identifier (without the angle
// brackets) to its key.
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierToKey[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts a key back to how it would be written in
// a Keyspec.
func ToConfigIdentifierString(k Key) string {
	if id, ok := keyToIdentifier[k]; ok {
		return "<" + id + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return "<" + strings.ToLower(tcell.KeyNames[k.Key]) + ">"
}
