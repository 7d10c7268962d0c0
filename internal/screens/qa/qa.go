// Package qa is a modal screen for asking the tutor free-form
// questions about the current exercise.
package qa

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkeyran/language-tutor/internal/screen"
	"github.com/mkeyran/language-tutor/internal/tutor"
	"github.com/mkeyran/language-tutor/internal/ui/components"
	"github.com/mkeyran/language-tutor/internal/ui/layout"
	"github.com/mkeyran/language-tutor/internal/ui/theme"
)

// answerMsg carries the tutor's reply.
type answerMsg struct {
	Answer string
	Err    error
}

// QAScreen implements screen.Screen for the question dialog.
type QAScreen struct {
	ctrl     *tutor.Controller
	question components.TextArea
	answer   string
	errText  string
	waiting  bool
}

var _ screen.Screen = (*QAScreen)(nil)
var _ screen.KeyHintProvider = (*QAScreen)(nil)

// New creates the question screen.
func New(ctrl *tutor.Controller) *QAScreen {
	return &QAScreen{
		ctrl:     ctrl,
		question: components.NewTextArea("Type your question here..."),
	}
}

func (q *QAScreen) Init() tea.Cmd {
	return q.question.Focus()
}

func (q *QAScreen) Title() string {
	return "Ask the tutor"
}

func (q *QAScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "^D", Description: "Send"},
		{Key: "^X", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (q *QAScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		q.waiting = false
		if msg.Err != nil {
			q.errText = msg.Err.Error()
		} else {
			q.answer = msg.Answer
			q.errText = ""
		}
		return q, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+d":
			if q.waiting {
				return q, nil
			}
			question := q.question.Value()
			q.waiting = true
			q.errText = ""
			return q, func() tea.Msg {
				answer, err := q.ctrl.AnswerQuestion(context.Background(), question)
				return answerMsg{Answer: answer, Err: err}
			}
		case "ctrl+x":
			q.question.SetValue("")
			q.answer = ""
			q.errText = ""
			return q, nil
		}
	}

	var cmd tea.Cmd
	q.question, cmd = q.question.Update(msg)
	return q, cmd
}

func (q *QAScreen) View(width, height int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	q.question.SetSize(inner, 4)

	blocks := []string{
		theme.FocusedCard.Width(inner).Render(
			theme.SectionTitle.Render("Your question") + "\n" + q.question.View()),
	}

	switch {
	case q.waiting:
		blocks = append(blocks, theme.Hint.Render("  Waiting for the tutor..."))
	case q.errText != "":
		blocks = append(blocks, theme.StatusError.Render("  "+q.errText))
	case q.answer != "":
		blocks = append(blocks, theme.Card.Width(inner).Render(
			theme.SectionTitle.Render("Answer")+"\n"+theme.Body.Render(q.answer)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
