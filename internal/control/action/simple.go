package action

// Simple implements Action with a plain func and a (possibly changing)
// explanation.
type Simple struct {
	do      func()
	explain func() string
}

// Do calls the wrapped func.
func (a *Simple) Do() { a.do() }

// Explain returns the current explanation.
func (a *Simple) Explain() string { return a.explain() }

// NewSimple returns a new Simple action.
// The explainer is evaluated on every call to Explain, so labels that depend
// on state (e.g. "Use 12H Time" vs. "Use 24H Time") stay current.
func NewSimple(explainer func() string, do func()) *Simple {
	return &Simple{
		do:      do,
		explain: explainer,
	}
}

// Static returns an explainer func for a fixed string.
func Static(s string) func() string {
	return func() string { return s }
}
