package engine_test

import (
	"testing"

	"github.com/go-theft-auto/engine"
)

func TestColorValid(t *testing.T) {
	if !engine.ColorTeal.Valid() {
		t.Error("ColorTeal should be valid")
	}
	if engine.RGBA(1.5, 0, 0, 1).Valid() {
		t.Error("component above 1 should be invalid")
	}
	if engine.RGBA(0, 0, 0, -0.1).Valid() {
		t.Error("negative component should be invalid")
	}
}

func TestColorComponents(t *testing.T) {
	c := engine.RGBA(0.1, 0.2, 0.3, 0.4)
	if got := engine.ColorFromComponents(c.Components()); got != c {
		t.Errorf("ColorFromComponents(Components()) = %v, want %v", got, c)
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"", "debug", "INFO", "warn", "warning", "error"} {
		if _, err := engine.ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", s, err)
		}
	}
	if _, err := engine.ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) should fail")
	}
}
