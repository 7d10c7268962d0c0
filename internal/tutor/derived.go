package tutor

import (
	"fmt"
	"strings"

	"github.com/mkeyran/language-tutor/internal/languages"
)

// WordCount describes the length of the current draft relative to the
// selected exercise type's expected range.
type WordCount struct {
	Count   int
	Min     int
	Max     int
	Bounded bool // a concrete type with known bounds is selected
	InRange bool
}

func (w WordCount) String() string {
	if !w.Bounded {
		return fmt.Sprintf("Words: %d", w.Count)
	}
	return fmt.Sprintf("Words: %d (expected %d-%d)", w.Count, w.Min, w.Max)
}

// WordCount computes the draft length against the selected type's
// bounds. Random and custom selections have no bounds.
func (c *Controller) WordCount() WordCount {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(strings.Fields(c.state.WritingInput))
	wc := WordCount{Count: count, InRange: true}

	cat, ok := languages.Get(c.state.Language)
	if !ok {
		return wc
	}
	def, ok := cat.Definition(c.displayTypeLocked())
	if !ok {
		return wc
	}
	wc.Min = def.MinWords
	wc.Max = def.MaxWords
	wc.Bounded = true
	wc.InRange = count >= def.MinWords && count <= def.MaxWords
	return wc
}

// GenerateLabel is the label for the primary generation action.
func (c *Controller) GenerateLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generating {
		return "Generating..."
	}
	if c.state.ExerciseType == languages.TypeCustom {
		return "Generate Hints"
	}
	return "Generate Exercise"
}

// CheckLabel is the label for the check action.
func (c *Controller) CheckLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checking {
		return "Checking..."
	}
	return "Check Writing"
}

// CanGenerate reports whether the generation action may be triggered.
func (c *Controller) CanGenerate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.generating
}

// CanCheck reports whether the check action may be triggered.
func (c *Controller) CanCheck() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.checking &&
		strings.TrimSpace(c.state.GeneratedExercise) != "" &&
		strings.TrimSpace(c.state.WritingInput) != ""
}
