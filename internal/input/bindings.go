package input

import (
	"fmt"
	"sort"

	"github.com/ja-he/lunadash/internal/control/action"
)

// Actionspec names a bindable action in configuration, e.g. "toggle-time-format".
type Actionspec string

// Bindings is the configurable mapping of key sequences to named actions.
type Bindings map[Keyspec]Actionspec

// Resolve replaces the action names with the actions from the given
// registry.
// Unknown names are an error so that typos in the configuration don't
// silently leave a key unbound.
func (b Bindings) Resolve(registry map[Actionspec]action.Action) (map[Keyspec]action.Action, error) {
	result := make(map[Keyspec]action.Action, len(b))
	var unknown []string
	for keyspec, name := range b {
		a, ok := registry[name]
		if !ok {
			unknown = append(unknown, fmt.Sprintf("'%s' (on '%s')", name, keyspec))
			continue
		}
		result[keyspec] = a
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown actions %v", unknown)
	}
	return result, nil
}
