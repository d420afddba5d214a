// Package action holds the things a key binding can trigger.
package action

// Action is something bound to an input sequence.
type Action interface {
	// Do performs the action.
	Do()
	// Explain returns a short human-readable description for help views.
	Explain() string
}
