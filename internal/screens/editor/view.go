package editor

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkeyran/language-tutor/internal/ui/theme"
)

func (e *EditorScreen) View(width, height int) string {
	snap := e.ctrl.Snapshot()
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var blocks []string

	selectors := lipgloss.JoinHorizontal(lipgloss.Top,
		e.language.View(e.focus == focusLanguage), "   ",
		e.level.View(e.focus == focusLevel), "   ",
		e.exType.View(e.focus == focusType),
	)
	blocks = append(blocks, " "+selectors)

	blocks = append(blocks, e.renderExercise(snap.State.IsCustomExercise, snap.State.GeneratedExercise, inner))

	if snap.State.GeneratedHints != "" {
		blocks = append(blocks,
			cardFor(false, inner).Render(
				theme.SectionTitle.Render("Hints")+"\n"+
					theme.Body.Render(truncate(snap.State.GeneratedHints, 10))))
	}

	blocks = append(blocks, e.renderWriting(inner))

	if !snap.State.Feedback.Empty() {
		blocks = append(blocks, e.renderFeedback(snap.State.Feedback.Mistakes, snap.State.Feedback.StyleErrors, snap.State.Feedback.Recommendations, inner))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (e *EditorScreen) renderExercise(custom bool, text string, inner int) string {
	title := theme.SectionTitle.Render("Exercise")
	if custom {
		title = theme.SectionTitle.Render("Exercise (custom)")
		e.custom.SetSize(inner, 4)
		return cardFor(e.focus == focusExercise, inner).Render(title + "\n" + e.custom.View())
	}

	body := theme.Hint.Render("No exercise yet. Press ^G to generate one.")
	if text != "" {
		body = theme.Body.Render(text)
	}
	return cardFor(false, inner).Render(title + "\n" + body)
}

func (e *EditorScreen) renderWriting(inner int) string {
	e.writing.SetSize(inner, 8)

	wc := e.ctrl.WordCount()
	counter := theme.Good.Render(wc.String())
	if wc.Bounded && !wc.InRange {
		counter = theme.Bad.Render(wc.String())
	}

	title := theme.SectionTitle.Render("Your writing") + "  " + counter
	return cardFor(e.focus == focusWriting, inner).Render(title + "\n" + e.writing.View())
}

func (e *EditorScreen) renderFeedback(mistakes, style, recs string, inner int) string {
	var b strings.Builder
	b.WriteString(theme.SectionTitle.Render("Feedback"))

	section := func(name, body string) {
		b.WriteString("\n" + theme.Title.Render(name) + "\n")
		if body == "" {
			b.WriteString(theme.Hint.Render("None."))
		} else {
			b.WriteString(theme.Body.Render(body))
		}
		b.WriteString("\n")
	}
	section("Mistakes", mistakes)
	section("Stylistic errors", style)
	section("Recommendations", recs)

	return cardFor(false, inner).Render(b.String())
}

func cardFor(focused bool, width int) lipgloss.Style {
	if focused {
		return theme.FocusedCard.Width(width)
	}
	return theme.Card.Width(width)
}

// truncate limits a block to n lines, appending an ellipsis line when
// text was cut.
func truncate(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[:n], "\n") + "\n…"
}
