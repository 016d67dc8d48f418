package technique

import (
	"errors"
	"math"
	"testing"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("catalog is empty")
	}
}

func TestCatalog_Get(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}

	box, err := c.Get("box")
	if err != nil {
		t.Fatalf("Get(box) error: %v", err)
	}
	if box.Name != "Box Breathing" {
		t.Errorf("expected Box Breathing, got %s", box.Name)
	}
	if len(box.Phases) != 4 {
		t.Errorf("expected 4 phases, got %d", len(box.Phases))
	}
	for _, p := range box.Phases {
		if p.Duration != 4 {
			t.Errorf("box phase %v: duration %v, want 4", p.Kind, p.Duration)
		}
	}

	_, err = c.Get("nonexistent")
	if !errors.Is(err, ErrUnknownTechnique) {
		t.Errorf("expected ErrUnknownTechnique, got %v", err)
	}
}

func TestCatalog_Validation(t *testing.T) {
	c, _ := NewCatalog()
	for _, tech := range c.All() {
		if tech.ID == "" {
			t.Error("technique with empty id")
		}
		if len(tech.Phases) == 0 {
			t.Errorf("%s: no phases", tech.ID)
		}
		if tech.DefaultCycles < 1 {
			t.Errorf("%s: default cycles %d", tech.ID, tech.DefaultCycles)
		}
		for i, p := range tech.Phases {
			if p.Duration < 0 {
				t.Errorf("%s phase %d: negative duration", tech.ID, i)
			}
			if p.Instruction == "" {
				t.Errorf("%s phase %d: empty instruction", tech.ID, i)
			}
		}
	}
}

func TestCycleDuration(t *testing.T) {
	c, _ := NewCatalog()
	box, _ := c.Get("box")
	if got := box.CycleDuration(); math.Abs(got-16) > 1e-9 {
		t.Errorf("box cycle duration = %v, want 16", got)
	}
}

func TestByCategory(t *testing.T) {
	c, _ := NewCatalog()
	total := 0
	for _, cat := range Categories() {
		group := c.ByCategory(cat)
		if len(group) == 0 {
			t.Errorf("category %s has no techniques", cat.Display())
		}
		for _, tech := range group {
			if tech.Category != cat {
				t.Errorf("%s filed under %s", tech.ID, cat.Display())
			}
		}
		total += len(group)
	}
	if total != c.Len() {
		t.Errorf("categories cover %d of %d techniques", total, c.Len())
	}
}

func TestPhaseKindDisplay(t *testing.T) {
	tests := []struct {
		kind PhaseKind
		want string
	}{
		{Inhale, "INHALE"},
		{Hold, "HOLD"},
		{Exhale, "EXHALE"},
		{RestAfterExhale, "REST"},
	}
	for _, tt := range tests {
		if got := tt.kind.Display(); got != tt.want {
			t.Errorf("Display(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	c := Color{74, 144, 217}
	if got := c.Hex(); got != "#4a90d9" {
		t.Errorf("Hex() = %q, want #4a90d9", got)
	}
}
