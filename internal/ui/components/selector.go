package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mkeyran/language-tutor/internal/ui/theme"
)

// Option is one choice in a Selector.
type Option struct {
	Code string
	Name string
}

// Selector is a horizontal option cycler: left/right move through a
// fixed list of options.
type Selector struct {
	Label    string
	Options  []Option
	Index    int
	OnChange func(code string) tea.Cmd
}

// NewSelector creates a selector positioned on the option with the
// given code, or the first option if the code is unknown.
func NewSelector(label string, options []Option, code string, onChange func(string) tea.Cmd) Selector {
	s := Selector{Label: label, Options: options, OnChange: onChange}
	for i, o := range options {
		if o.Code == code {
			s.Index = i
			break
		}
	}
	return s
}

// Value returns the code of the current option.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index].Code
}

// Select moves the selector to the option with the given code, if
// present.
func (s *Selector) Select(code string) {
	for i, o := range s.Options {
		if o.Code == code {
			s.Index = i
			return
		}
	}
}

// Update handles left/right cycling.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
	case "right", "l":
		s.Index = (s.Index + 1) % len(s.Options)
	default:
		return s, nil
	}

	if s.OnChange != nil {
		return s, s.OnChange(s.Value())
	}
	return s, nil
}

// View renders the selector as "Label: < name >".
func (s Selector) View(focused bool) string {
	name := ""
	if s.Index >= 0 && s.Index < len(s.Options) {
		name = s.Options[s.Index].Name
	}
	value := fmt.Sprintf("< %s >", name)
	if focused {
		return theme.Body.Render(s.Label+": ") + theme.Selected.Render(value)
	}
	return theme.Hint.Render(s.Label+": ") + theme.Unselected.Render(value)
}
