// Package tutor coordinates the writing session: selection, exercise
// generation, checking, persistence, and export. The Controller is the
// sole mutator of the session state; presentation layers only read
// snapshots and trigger operations.
package tutor

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkeyran/language-tutor/internal/exercise"
	"github.com/mkeyran/language-tutor/internal/languages"
	"github.com/mkeyran/language-tutor/internal/llm"
	"github.com/mkeyran/language-tutor/internal/state"
)

// Event identifies which part of the session changed.
type Event int

const (
	EventSelection Event = iota
	EventExercise
	EventWriting
	EventFeedback
	EventStatus
	EventSession // full state replaced by a load
)

// Paths tells the controller where session artifacts live.
type Paths struct {
	StatePath string
	ExportDir string
}

// Controller owns the session state. All methods are safe for
// concurrent use; LLM calls run without the lock held so the UI stays
// readable while a request is in flight.
type Controller struct {
	mu    sync.Mutex
	state *state.SessionState
	svc   *exercise.Service
	paths Paths

	sessionID string
	// resolvedType is the concrete exercise type of the last generated
	// exercise. It differs from the selection when "random" is picked.
	resolvedType string
	status       string

	generating bool
	checking   bool
	answering  bool

	listeners []func(Event)
	now       func() time.Time
}

// New creates a Controller around a fresh default session.
func New(svc *exercise.Service, paths Paths) *Controller {
	return &Controller{
		state:     state.New(),
		svc:       svc,
		paths:     paths,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// Subscribe registers a callback invoked after every session change.
// Callbacks run outside the controller lock and may call back in.
func (c *Controller) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) publish(events ...Event) {
	c.mu.Lock()
	ls := slices.Clone(c.listeners)
	c.mu.Unlock()
	for _, l := range ls {
		for _, ev := range events {
			l(ev)
		}
	}
}

// Snapshot is a point-in-time copy of the session plus derived UI
// state.
type Snapshot struct {
	State      state.SessionState
	Status     string
	Generating bool
	Checking   bool
	Answering  bool
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:      *c.state,
		Status:     c.status,
		Generating: c.generating,
		Checking:   c.checking,
		Answering:  c.answering,
	}
}

// SessionID returns the identifier used to group this run's LLM calls.
func (c *Controller) SessionID() string { return c.sessionID }

func (c *Controller) setStatusLocked(format string, args ...any) {
	c.status = fmt.Sprintf(format, args...)
}

// SetStatus replaces the status line.
func (c *Controller) SetStatus(msg string) {
	c.mu.Lock()
	c.status = msg
	c.mu.Unlock()
	c.publish(EventStatus)
}

// SetLanguage switches the target language. The generated exercise,
// hints, and feedback belong to the old language and are cleared.
func (c *Controller) SetLanguage(code string) error {
	c.mu.Lock()
	cat, ok := languages.Get(code)
	if !ok {
		c.mu.Unlock()
		return &ValidationError{Msg: fmt.Sprintf("unknown language: %s", code)}
	}
	if c.state.Language == code {
		c.mu.Unlock()
		return nil
	}

	c.state.Language = code
	c.state.GeneratedExercise = ""
	c.state.IsCustomExercise = false
	c.state.GeneratedHints = ""
	c.state.Feedback = state.Feedback{}
	c.resolvedType = ""
	c.state.LastModified = c.now()
	c.setStatusLocked("Language set to: %s", cat.Name)
	c.mu.Unlock()

	c.publish(EventSelection, EventExercise, EventFeedback, EventStatus)
	return nil
}

// SetLevel switches the proficiency level. The current exercise stays;
// the next generation or check uses the new level.
func (c *Controller) SetLevel(code string) error {
	c.mu.Lock()
	if !languages.ValidLevel(code) {
		c.mu.Unlock()
		return &ValidationError{Msg: fmt.Sprintf("unknown level: %s", code)}
	}
	if c.state.Level == code {
		c.mu.Unlock()
		return nil
	}
	c.state.Level = code
	c.state.LastModified = c.now()
	c.setStatusLocked("Level set to: %s", code)
	c.mu.Unlock()

	c.publish(EventSelection, EventStatus)
	return nil
}

// SetExerciseType switches the exercise type. The old exercise, hints,
// and feedback no longer match the selection and are cleared.
func (c *Controller) SetExerciseType(code string) error {
	c.mu.Lock()
	cat, ok := languages.Get(c.state.Language)
	if !ok || !cat.ValidType(code) {
		c.mu.Unlock()
		return &ValidationError{Msg: fmt.Sprintf("unknown exercise type: %s", code)}
	}
	if c.state.ExerciseType == code {
		c.mu.Unlock()
		return nil
	}

	c.state.ExerciseType = code
	c.state.GeneratedExercise = ""
	c.state.GeneratedHints = ""
	c.state.Feedback = state.Feedback{}
	c.state.IsCustomExercise = code == languages.TypeCustom
	c.resolvedType = ""
	c.state.LastModified = c.now()
	if code == languages.TypeCustom {
		c.setStatusLocked("Custom exercise selected. Write the task yourself.")
	} else {
		c.setStatusLocked("Exercise type set to: %s", typeName(cat, code))
	}
	c.mu.Unlock()

	c.publish(EventSelection, EventExercise, EventFeedback, EventStatus)
	return nil
}

// SetCustomExercise replaces the exercise text with a user-authored
// task. Old hints refer to the old task and are cleared.
func (c *Controller) SetCustomExercise(text string) {
	c.mu.Lock()
	if c.state.GeneratedExercise == text && c.state.IsCustomExercise {
		c.mu.Unlock()
		return
	}
	c.state.GeneratedExercise = text
	c.state.IsCustomExercise = true
	c.state.GeneratedHints = ""
	c.state.LastModified = c.now()
	c.mu.Unlock()

	c.publish(EventExercise)
}

// SetWritingInput stores the learner's draft. Existing feedback stays
// visible while they type.
func (c *Controller) SetWritingInput(text string) {
	c.mu.Lock()
	if c.state.WritingInput == text {
		c.mu.Unlock()
		return
	}
	c.state.WritingInput = text
	c.state.LastModified = c.now()
	c.mu.Unlock()

	c.publish(EventWriting)
}

// GenerateExercise produces a new exercise for the current selection.
// A "random" selection resolves to a fresh concrete type on every
// invocation. On failure the previous exercise is kept. Returns ErrBusy
// if a generation is already running.
func (c *Controller) GenerateExercise(ctx context.Context) error {
	c.mu.Lock()
	if c.generating {
		c.mu.Unlock()
		return ErrBusy
	}
	cat, ok := languages.Get(c.state.Language)
	if !ok {
		c.mu.Unlock()
		return &ValidationError{Msg: "no language selected"}
	}
	if c.state.ExerciseType == languages.TypeCustom {
		c.mu.Unlock()
		return &ValidationError{Msg: "custom exercise selected; write the task and generate hints instead"}
	}
	def, err := cat.Resolve(c.state.ExerciseType)
	if err != nil {
		c.mu.Unlock()
		return &ValidationError{Msg: err.Error()}
	}
	level := c.state.Level
	c.generating = true
	c.setStatusLocked("Generating '%s' exercise for %s...", def.Name, cat.Name)
	c.mu.Unlock()
	c.publish(EventStatus)

	ex, genErr := c.svc.Generate(c.sessionCtx(ctx), exercise.GenerateInput{
		Language:   cat,
		Level:      level,
		Definition: def,
	})

	c.mu.Lock()
	c.generating = false
	if genErr != nil {
		c.setStatusLocked("Error generating exercise: %v", genErr)
		c.mu.Unlock()
		c.publish(EventStatus)
		return genErr
	}
	c.state.GeneratedExercise = ex.Text
	c.state.GeneratedHints = ex.Hints
	c.state.IsCustomExercise = false
	c.state.Feedback = state.Feedback{}
	c.resolvedType = def.Code
	c.state.LastModified = c.now()
	c.setStatusLocked("Exercise generated.")
	c.mu.Unlock()

	c.publish(EventExercise, EventFeedback, EventStatus)
	return nil
}

// GenerateHints asks for hints on a user-authored exercise. Returns
// ErrBusy if a generation is already running.
func (c *Controller) GenerateHints(ctx context.Context) error {
	c.mu.Lock()
	if c.generating {
		c.mu.Unlock()
		return ErrBusy
	}
	cat, ok := languages.Get(c.state.Language)
	if !ok {
		c.mu.Unlock()
		return &ValidationError{Msg: "no language selected"}
	}
	text := strings.TrimSpace(c.state.GeneratedExercise)
	if text == "" {
		c.mu.Unlock()
		return &ValidationError{Msg: "write your custom exercise first"}
	}
	level := c.state.Level
	c.generating = true
	c.setStatusLocked("Generating hints for custom exercise...")
	c.mu.Unlock()
	c.publish(EventStatus)

	hints, err := c.svc.Hints(c.sessionCtx(ctx), exercise.HintsInput{
		Language: cat,
		Level:    level,
		Exercise: text,
	})

	c.mu.Lock()
	c.generating = false
	if err != nil {
		c.setStatusLocked("Error generating hints: %v", err)
		c.mu.Unlock()
		c.publish(EventStatus)
		return err
	}
	c.state.GeneratedHints = hints
	c.state.LastModified = c.now()
	c.setStatusLocked("Hints generated.")
	c.mu.Unlock()

	c.publish(EventExercise, EventStatus)
	return nil
}

// Generate runs the primary generation action for the current
// selection: hints for a custom exercise, otherwise a new exercise.
func (c *Controller) Generate(ctx context.Context) error {
	c.mu.Lock()
	custom := c.state.ExerciseType == languages.TypeCustom
	c.mu.Unlock()
	if custom {
		return c.GenerateHints(ctx)
	}
	return c.GenerateExercise(ctx)
}

// CheckWriting grades the learner's draft against the exercise. Blank
// input fails fast without an LLM call. Returns ErrBusy if a check is
// already running.
func (c *Controller) CheckWriting(ctx context.Context) error {
	c.mu.Lock()
	if c.checking {
		c.mu.Unlock()
		return ErrBusy
	}
	cat, ok := languages.Get(c.state.Language)
	if !ok {
		c.mu.Unlock()
		return &ValidationError{Msg: "no language selected"}
	}
	if strings.TrimSpace(c.state.GeneratedExercise) == "" {
		c.mu.Unlock()
		return &ValidationError{Msg: "generate an exercise first"}
	}
	if strings.TrimSpace(c.state.WritingInput) == "" {
		c.mu.Unlock()
		return &ValidationError{Msg: "write something first"}
	}
	input := exercise.CheckInput{
		Language:   cat,
		Level:      c.state.Level,
		Definition: c.checkDefinitionLocked(cat),
		Exercise:   c.state.GeneratedExercise,
		Writing:    c.state.WritingInput,
	}
	c.checking = true
	c.setStatusLocked("Checking your writing...")
	c.mu.Unlock()
	c.publish(EventStatus)

	fb, err := c.svc.Check(c.sessionCtx(ctx), input)

	c.mu.Lock()
	c.checking = false
	if err != nil {
		c.setStatusLocked("Error checking writing: %v", err)
		c.mu.Unlock()
		c.publish(EventStatus)
		return err
	}
	c.state.Feedback = state.Feedback{
		Mistakes:        fb.Mistakes,
		StyleErrors:     fb.StyleErrors,
		Recommendations: fb.Recommendations,
	}
	c.state.LastModified = c.now()
	c.setStatusLocked("Feedback ready.")
	c.mu.Unlock()

	c.publish(EventFeedback, EventStatus)
	return nil
}

// AnswerQuestion asks the tutor a free-form question in the context of
// the current exercise.
func (c *Controller) AnswerQuestion(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", &ValidationError{Msg: "enter a question first"}
	}
	c.mu.Lock()
	if c.answering {
		c.mu.Unlock()
		return "", ErrBusy
	}
	cat, ok := languages.Get(c.state.Language)
	if !ok {
		c.mu.Unlock()
		return "", &ValidationError{Msg: "no language selected"}
	}
	input := exercise.AnswerInput{
		Language:     cat,
		Level:        c.state.Level,
		ExerciseType: typeName(cat, c.displayTypeLocked()),
		Exercise:     c.state.GeneratedExercise,
		Question:     question,
	}
	c.answering = true
	c.mu.Unlock()

	answer, err := c.svc.Answer(c.sessionCtx(ctx), input)

	c.mu.Lock()
	c.answering = false
	c.mu.Unlock()
	return answer, err
}

// SaveState writes a snapshot of the session to the configured state
// path.
func (c *Controller) SaveState() error {
	c.mu.Lock()
	snap := *c.state
	snap.LastSavedAt = c.now()
	c.mu.Unlock()

	if err := snap.SaveFile(c.paths.StatePath); err != nil {
		c.SetStatus(fmt.Sprintf("Error saving state: %v", err))
		return err
	}

	c.mu.Lock()
	c.state.LastSavedAt = snap.LastSavedAt
	c.setStatusLocked("State saved.")
	c.mu.Unlock()
	c.publish(EventStatus)
	return nil
}

// LoadState replaces the session with the saved snapshot. On any
// failure the in-memory session is left untouched.
func (c *Controller) LoadState() error {
	loaded, err := state.LoadFile(c.paths.StatePath)
	if err != nil {
		lerr := &StateLoadError{Path: c.paths.StatePath, Err: err}
		c.SetStatus(fmt.Sprintf("Error loading state: %v", err))
		return lerr
	}

	c.mu.Lock()
	c.state = loaded
	if loaded.ExerciseType != languages.TypeRandom && loaded.ExerciseType != languages.TypeCustom {
		c.resolvedType = loaded.ExerciseType
	} else {
		c.resolvedType = ""
	}
	c.setStatusLocked("State loaded.")
	c.mu.Unlock()

	c.publish(EventSession, EventSelection, EventExercise, EventWriting, EventFeedback, EventStatus)
	return nil
}

// ExportMarkdown renders the session to a markdown file. An empty path
// picks a timestamped name in the export directory. Returns the path
// written.
func (c *Controller) ExportMarkdown(path string) (string, error) {
	c.mu.Lock()
	snap := *c.state
	display := c.displayTypeLocked()
	c.mu.Unlock()

	if path == "" {
		name := fmt.Sprintf("%s_%s_%s.md", snap.Language, display, c.now().Format("2006-01-02_15-04-05"))
		name = strings.NewReplacer(" ", "_", "/", "_").Replace(name)
		path = filepath.Join(c.paths.ExportDir, name)
	}

	if err := state.WriteAtomic(path, []byte(snap.ToMarkdown())); err != nil {
		eerr := &ExportError{Path: path, Err: err}
		c.SetStatus(fmt.Sprintf("Error exporting markdown: %v", err))
		return "", eerr
	}

	c.SetStatus(fmt.Sprintf("Exported to %s", path))
	return path, nil
}

// sessionCtx tags outgoing LLM calls with this run's session ID.
func (c *Controller) sessionCtx(ctx context.Context) context.Context {
	return llm.WithSession(ctx, c.sessionID)
}

// displayTypeLocked returns the concrete type code when one is known,
// falling back to the raw selection.
func (c *Controller) displayTypeLocked() string {
	if c.resolvedType != "" {
		return c.resolvedType
	}
	return c.state.ExerciseType
}

// checkDefinitionLocked picks the definition describing the current
// exercise for grading prompts. A restored random session without a
// resolved type falls back to a generic definition.
func (c *Controller) checkDefinitionLocked(cat *languages.Catalog) languages.Definition {
	code := c.displayTypeLocked()
	if def, ok := cat.Definition(code); ok {
		return def
	}
	return languages.Definition{Code: "writing", Name: "Writing"}
}

func typeName(cat *languages.Catalog, code string) string {
	if def, ok := cat.Definition(code); ok {
		return def.Name
	}
	switch code {
	case languages.TypeRandom:
		return "Random"
	case languages.TypeCustom:
		return "Custom"
	}
	return code
}
