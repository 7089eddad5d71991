// Package category holds the set of labels an item can be filed under.
// The set is server-sourced; a fixed default covers the window before the
// first fetch completes (or if it never does).
package category

// Defaults are the built-in labels used until the server set arrives
var Defaults = []string{"build", "go out", "play"}

// Registry is an ordered set of category labels
type Registry struct {
	labels []string
}

// NewRegistry returns a registry seeded with the default labels
func NewRegistry() *Registry {
	return &Registry{labels: append([]string(nil), Defaults...)}
}

// Replace swaps in the server-provided label set. An empty set is ignored
// so a bad fetch can never leave the picker without options.
func (r *Registry) Replace(labels []string) {
	if len(labels) == 0 {
		return
	}
	r.labels = append([]string(nil), labels...)
}

// Labels returns the current label set in order
func (r *Registry) Labels() []string {
	return append([]string(nil), r.labels...)
}

// Default returns the label new items start on
func (r *Registry) Default() string {
	return r.labels[0]
}

// Next returns the label after the given one, wrapping around. Unknown
// labels map to the first entry so cycling always lands somewhere valid.
func (r *Registry) Next(label string) string {
	for i, l := range r.labels {
		if l == label {
			return r.labels[(i+1)%len(r.labels)]
		}
	}
	return r.labels[0]
}

// Icon maps a label to its display glyph. Total over any input: labels
// outside the well-known three get a generic marker, since the storage
// layer treats categories as opaque text.
func Icon(label string) string {
	switch label {
	case "build":
		return "🔨"
	case "go out":
		return "🚀"
	case "play":
		return "🎮"
	default:
		return "📝"
	}
}
