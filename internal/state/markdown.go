package state

import (
	"fmt"
	"strings"

	"github.com/mkeyran/language-tutor/internal/languages"
)

// placeholder is rendered for any empty section so the exported
// document always has the same shape.
const placeholder = "None."

// ToMarkdown renders the session as a human-readable document with a
// fixed section order. The output depends only on the state contents,
// so rendering the same state twice yields identical bytes.
func (s *SessionState) ToMarkdown() string {
	var b strings.Builder

	langName := s.Language
	typeName := s.ExerciseType
	if cat, ok := languages.Get(s.Language); ok {
		langName = cat.Name
		if def, ok := cat.Definition(s.ExerciseType); ok {
			typeName = def.Name
		} else if s.ExerciseType == languages.TypeCustom {
			typeName = "Custom"
		} else if s.ExerciseType == languages.TypeRandom {
			typeName = "Random"
		}
	}

	fmt.Fprintf(&b, "# Writing Exercise (%s, %s, %s)\n\n", langName, s.Level, typeName)

	section(&b, "Exercise", s.GeneratedExercise)
	section(&b, "Hints", s.GeneratedHints)
	section(&b, "Writing", s.WritingInput)
	section(&b, "Mistakes", s.Feedback.Mistakes)
	section(&b, "Stylistic Errors", s.Feedback.StyleErrors)
	section(&b, "Recommendations", s.Feedback.Recommendations)

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	body = strings.TrimSpace(body)
	if body == "" {
		body = placeholder
	}
	b.WriteString(body)
	b.WriteString("\n\n")
}
