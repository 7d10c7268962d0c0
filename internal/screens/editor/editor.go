// Package editor is the main workspace screen: selection, exercise,
// writing, and feedback.
package editor

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/mkeyran/language-tutor/internal/languages"
	"github.com/mkeyran/language-tutor/internal/router"
	"github.com/mkeyran/language-tutor/internal/screen"
	"github.com/mkeyran/language-tutor/internal/screens/qa"
	"github.com/mkeyran/language-tutor/internal/screens/settings"
	"github.com/mkeyran/language-tutor/internal/tutor"
	"github.com/mkeyran/language-tutor/internal/ui/components"
	"github.com/mkeyran/language-tutor/internal/ui/layout"
)

// focusZone identifies which part of the editor has keyboard focus.
type focusZone int

const (
	focusLanguage focusZone = iota
	focusLevel
	focusType
	focusExercise // custom exercise text, only when custom is selected
	focusWriting
)

// EditorScreen implements screen.Screen for the writing workspace.
type EditorScreen struct {
	ctrl *tutor.Controller

	language components.Selector
	level    components.Selector
	exType   components.Selector
	custom   components.TextArea
	writing  components.TextArea

	focus focusZone
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates the editor around an existing controller. The selectors
// and textareas start from the controller's current session.
func New(ctrl *tutor.Controller) *EditorScreen {
	snap := ctrl.Snapshot()

	langOpts := make([]components.Option, 0, len(languages.All()))
	for _, cat := range languages.All() {
		langOpts = append(langOpts, components.Option{Code: cat.Code, Name: cat.Name})
	}
	levelOpts := make([]components.Option, 0, len(languages.Levels))
	for _, l := range languages.Levels {
		levelOpts = append(levelOpts, components.Option{Code: l.Code, Name: l.Code + " " + l.Name})
	}

	e := &EditorScreen{
		ctrl:    ctrl,
		custom:  components.NewTextArea("Write your own exercise task..."),
		writing: components.NewTextArea("Write here..."),
		focus:   focusWriting,
	}

	e.language = components.NewSelector("Language", langOpts, snap.State.Language, func(code string) tea.Cmd {
		return func() tea.Msg { return selectionChangedMsg{Err: ctrl.SetLanguage(code)} }
	})
	e.level = components.NewSelector("Level", levelOpts, snap.State.Level, func(code string) tea.Cmd {
		return func() tea.Msg { return selectionChangedMsg{Err: ctrl.SetLevel(code)} }
	})
	e.exType = components.NewSelector("Type", typeOptions(snap.State.Language), snap.State.ExerciseType, func(code string) tea.Cmd {
		return func() tea.Msg { return selectionChangedMsg{Err: ctrl.SetExerciseType(code)} }
	})

	e.syncFromSession()
	return e
}

// typeOptions builds the exercise-type list for a language: concrete
// types plus the synthetic random and custom entries.
func typeOptions(langCode string) []components.Option {
	opts := []components.Option{{Code: languages.TypeRandom, Name: "Random"}}
	if cat, ok := languages.Get(langCode); ok {
		for _, code := range cat.Types() {
			def, _ := cat.Definition(code)
			opts = append(opts, components.Option{Code: code, Name: def.Name})
		}
	}
	return append(opts, components.Option{Code: languages.TypeCustom, Name: "Custom"})
}

func (e *EditorScreen) Init() tea.Cmd {
	return e.writing.Focus()
}

func (e *EditorScreen) Title() string {
	return "Writing"
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Focus"},
		{Key: "^G", Description: e.ctrl.GenerateLabel()},
		{Key: "^R", Description: e.ctrl.CheckLabel()},
		{Key: "^A", Description: "Ask"},
		{Key: "^S", Description: "Save"},
		{Key: "^O", Description: "Load"},
		{Key: "^E", Description: "Export"},
		{Key: "^P", Description: "Settings"},
	}
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case selectionChangedMsg:
		// each language carries its own type list
		e.syncTypeOptions()
		e.syncFromSession()
		return e, nil

	case generateDoneMsg, checkDoneMsg:
		// controller already updated status; re-sync visible text
		e.syncFromSession()
		return e, nil

	case stateOpDoneMsg:
		if msg.Loaded && msg.Err == nil {
			e.syncSelectorsFromSession()
		}
		e.syncFromSession()
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e.forwardToFocused(msg)
}

func (e *EditorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		e.cycleFocus(1)
		return e, e.applyFocus()
	case "shift+tab":
		e.cycleFocus(-1)
		return e, e.applyFocus()

	case "ctrl+g":
		if !e.ctrl.CanGenerate() {
			return e, nil
		}
		return e, func() tea.Msg {
			return generateDoneMsg{Err: e.ctrl.Generate(context.Background())}
		}

	case "ctrl+r":
		return e, func() tea.Msg {
			return checkDoneMsg{Err: e.ctrl.CheckWriting(context.Background())}
		}

	case "ctrl+s":
		return e, func() tea.Msg {
			return stateOpDoneMsg{Err: e.ctrl.SaveState()}
		}

	case "ctrl+o":
		return e, func() tea.Msg {
			return stateOpDoneMsg{Loaded: true, Err: e.ctrl.LoadState()}
		}

	case "ctrl+e":
		return e, func() tea.Msg {
			_, err := e.ctrl.ExportMarkdown("")
			return stateOpDoneMsg{Err: err}
		}

	case "ctrl+a":
		return e, func() tea.Msg {
			return router.PushScreenMsg{Screen: qa.New(e.ctrl)}
		}

	case "ctrl+p":
		return e, func() tea.Msg {
			return router.PushScreenMsg{Screen: settings.New(e.ctrl)}
		}
	}

	return e.forwardToFocused(msg)
}

// forwardToFocused routes a message to the focused selector or
// textarea and pushes edits back into the controller.
func (e *EditorScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch e.focus {
	case focusLanguage:
		e.language, cmd = e.language.Update(msg)
	case focusLevel:
		e.level, cmd = e.level.Update(msg)
	case focusType:
		e.exType, cmd = e.exType.Update(msg)
	case focusExercise:
		before := e.custom.Value()
		e.custom, cmd = e.custom.Update(msg)
		if v := e.custom.Value(); v != before {
			e.ctrl.SetCustomExercise(v)
		}
	case focusWriting:
		before := e.writing.Value()
		e.writing, cmd = e.writing.Update(msg)
		if v := e.writing.Value(); v != before {
			e.ctrl.SetWritingInput(v)
		}
	}
	return e, cmd
}

// cycleFocus moves focus through the zones, skipping the custom
// exercise textarea unless a custom exercise is selected.
func (e *EditorScreen) cycleFocus(dir int) {
	zones := []focusZone{focusLanguage, focusLevel, focusType, focusWriting}
	if e.ctrl.Snapshot().State.IsCustomExercise {
		zones = []focusZone{focusLanguage, focusLevel, focusType, focusExercise, focusWriting}
	}
	cur := 0
	for i, z := range zones {
		if z == e.focus {
			cur = i
			break
		}
	}
	e.focus = zones[(cur+dir+len(zones))%len(zones)]
}

func (e *EditorScreen) applyFocus() tea.Cmd {
	e.custom.Blur()
	e.writing.Blur()
	switch e.focus {
	case focusExercise:
		return e.custom.Focus()
	case focusWriting:
		return e.writing.Focus()
	}
	return nil
}

// syncFromSession refreshes the textareas when the session text was
// changed by something other than typing (generation, load).
func (e *EditorScreen) syncFromSession() {
	snap := e.ctrl.Snapshot()
	if snap.State.IsCustomExercise {
		if e.custom.Value() != snap.State.GeneratedExercise {
			e.custom.SetValue(snap.State.GeneratedExercise)
		}
	}
	if e.writing.Value() != snap.State.WritingInput {
		e.writing.SetValue(snap.State.WritingInput)
	}
}

// syncTypeOptions rebuilds the type selector for the session's current
// language, keeping the session's selection.
func (e *EditorScreen) syncTypeOptions() {
	snap := e.ctrl.Snapshot()
	e.exType = components.NewSelector("Type", typeOptions(snap.State.Language), snap.State.ExerciseType, e.exType.OnChange)
}

// syncSelectorsFromSession repositions the selectors after a state
// load replaced the whole session.
func (e *EditorScreen) syncSelectorsFromSession() {
	snap := e.ctrl.Snapshot()
	e.language.Select(snap.State.Language)
	e.level.Select(snap.State.Level)
	e.syncTypeOptions()
}
