package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mkeyran/language-tutor/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "editor"})

	settings := &stubScreen{title: "settings"}
	r.Push(settings)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "settings" {
		t.Errorf("active = %q, want settings", r.Active().Title())
	}
	if !settings.initRan {
		t.Error("Init() did not run on pushed screen")
	}
}

func TestPopAndBottomGuard(t *testing.T) {
	r := New(&stubScreen{title: "editor"})
	r.Push(&stubScreen{title: "qa"})

	r.Pop()
	if r.Active().Title() != "editor" {
		t.Errorf("active = %q, want editor", r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("bottom screen popped: depth = %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "editor"})
	r.Push(&stubScreen{title: "settings"})

	repl := &stubScreen{title: "qa"}
	r.Replace(repl)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "qa" {
		t.Errorf("active = %q, want qa", r.Active().Title())
	}
	if !repl.initRan {
		t.Error("Init() did not run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "editor"})

	pushed := &stubScreen{title: "settings"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Active().Title() != "settings" {
		t.Fatalf("active = %q after push msg", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "editor" {
		t.Fatalf("active = %q after pop msg", r.Active().Title())
	}

	repl := &stubScreen{title: "qa"}
	r.Update(ReplaceScreenMsg{Screen: repl})
	if r.Active().Title() != "qa" || !repl.initRan {
		t.Fatalf("replace msg not handled")
	}
}
