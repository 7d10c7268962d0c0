package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/mkeyran/language-tutor/internal/router"
	"github.com/mkeyran/language-tutor/internal/screen"
	"github.com/mkeyran/language-tutor/internal/screens/editor"
	"github.com/mkeyran/language-tutor/internal/tutor"
	"github.com/mkeyran/language-tutor/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Controller *tutor.Controller
}

// sessionEventMsg repaints the UI when the controller reports a change
// from outside the update loop.
type sessionEventMsg struct {
	Event tutor.Event
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *tutor.Controller
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		ctrl:   opts.Controller,
		router: router.New(editor.New(opts.Controller)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionEventMsg:
		// snapshot-driven views pick the change up on next render
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.ctrl.Snapshot()
	selection := fmt.Sprintf("%s · %s", snap.State.Language, snap.State.Level)
	header := layout.RenderHeader(title, selection, m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hp.KeyHints(), hints...)
	}
	statusIsError := len(snap.Status) > 5 && snap.Status[:5] == "Error"
	footer := layout.RenderFooter(hints, snap.Status, statusIsError, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. Controller events trigger
// repaints so status changes during an LLM call show up immediately.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))

	opts.Controller.Subscribe(func(ev tutor.Event) {
		p.Send(sessionEventMsg{Event: ev})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
