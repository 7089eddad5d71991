package category

import (
	"testing"
)

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	labels := r.Labels()
	if len(labels) != 3 {
		t.Fatalf("expected 3 default labels, got %d", len(labels))
	}
	if r.Default() != "build" {
		t.Errorf("expected default label %q, got %q", "build", r.Default())
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()

	r.Replace([]string{"cook", "travel"})
	labels := r.Labels()
	if len(labels) != 2 || labels[0] != "cook" || labels[1] != "travel" {
		t.Errorf("unexpected labels after replace: %v", labels)
	}

	// Empty server set must not wipe the registry
	r.Replace(nil)
	if len(r.Labels()) != 2 {
		t.Errorf("empty replace should be ignored, got %v", r.Labels())
	}
}

func TestRegistryNextWraps(t *testing.T) {
	r := NewRegistry()

	if got := r.Next("build"); got != "go out" {
		t.Errorf("Next(build) = %q", got)
	}
	if got := r.Next("play"); got != "build" {
		t.Errorf("Next(play) should wrap to build, got %q", got)
	}
	if got := r.Next("nonsense"); got != "build" {
		t.Errorf("Next of unknown label should land on first entry, got %q", got)
	}
}

func TestIconTotal(t *testing.T) {
	cases := map[string]string{
		"build":    "🔨",
		"go out":   "🚀",
		"play":     "🎮",
		"":         "📝",
		"whatever": "📝",
	}
	for label, want := range cases {
		if got := Icon(label); got != want {
			t.Errorf("Icon(%q) = %q, want %q", label, got, want)
		}
	}
}
