package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/breathe/internal/audio"
	"github.com/san-kum/breathe/internal/session"
	"github.com/san-kum/breathe/internal/technique"
	"github.com/san-kum/breathe/internal/theme"
)

func testModel(t *testing.T) model {
	t.Helper()
	catalog, err := technique.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	sess := session.New(catalog, theme.Default())
	return newModel(sess, audio.NewPlayer(), 60)
}

func TestSelectorListsTechniques(t *testing.T) {
	m := testModel(t)
	out := m.viewSelector()
	cat := m.sess.Catalog()
	for i := 0; i < cat.Len(); i++ {
		if !strings.Contains(out, cat.At(i).Name) {
			t.Errorf("selector missing technique %q", cat.At(i).Name)
		}
	}
}

func TestReadyShowsTechniqueDetails(t *testing.T) {
	m := testModel(t)
	m.sess.ConfirmSelection()
	tech, err := m.sess.Technique()
	if err != nil {
		t.Fatalf("Technique: %v", err)
	}
	out := m.viewReady()
	for _, want := range []string{tech.Name, tech.Pattern, tech.Tagline} {
		if !strings.Contains(out, want) {
			t.Errorf("ready screen missing %q", want)
		}
	}
}

func TestGuideShowsTechniqueName(t *testing.T) {
	m := testModel(t)
	m.sess.ConfirmSelection()
	tech, err := m.sess.Technique()
	if err != nil {
		t.Fatalf("Technique: %v", err)
	}
	if out := m.viewGuide(); !strings.Contains(out, tech.Name) {
		t.Errorf("guide missing technique name %q", tech.Name)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four five", 10)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "one two three four five" {
		t.Errorf("wrap lost words: %q", got)
	}
}

func TestWrapShortInput(t *testing.T) {
	if got := wrap("hello", 20); got != "hello" {
		t.Errorf("wrap(%q) = %q", "hello", got)
	}
}

func TestIndent(t *testing.T) {
	if got := indent("a\nb", "  "); got != "  a\n  b" {
		t.Errorf("indent = %q", got)
	}
}
