// Package state holds the session record: the current exercise, the
// learner's writing, and the feedback returned by the last check.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mkeyran/language-tutor/internal/languages"
)

// SchemaVersion is written to every state file. Files with a newer
// version than the running binary understands are rejected rather than
// partially applied.
const SchemaVersion = 1

// Feedback holds the three categorized outputs of a writing check.
type Feedback struct {
	Mistakes        string `json:"mistakes"`
	StyleErrors     string `json:"style_errors"`
	Recommendations string `json:"recommendations"`
}

// Empty reports whether no feedback section is populated.
func (f Feedback) Empty() bool {
	return f.Mistakes == "" && f.StyleErrors == "" && f.Recommendations == ""
}

// SessionState is the full in-memory record of the current exercise.
// It is owned and mutated exclusively by the controller.
type SessionState struct {
	Language     string `json:"language"`
	Level        string `json:"level"`
	ExerciseType string `json:"exercise_type"`

	GeneratedExercise string `json:"generated_exercise"`
	// IsCustomExercise marks the exercise text as user-authored. While
	// set, GeneratedExercise is user-writable instead of AI-writable.
	IsCustomExercise bool   `json:"is_custom_exercise"`
	GeneratedHints   string `json:"generated_hints"`

	WritingInput string   `json:"writing_input"`
	Feedback     Feedback `json:"feedback"`

	LastSavedAt  time.Time `json:"last_saved_at"`
	LastModified time.Time `json:"last_modified"`
}

// New returns a SessionState with defaults: Polish, intermediate
// level, random exercise type.
func New() *SessionState {
	return &SessionState{
		Language:     "polish",
		Level:        "B1",
		ExerciseType: languages.TypeRandom,
	}
}

// FormatError reports a state document that could not be decoded or
// failed catalog validation.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid state document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid state document: %s", e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// document is the on-disk envelope around SessionState.
type document struct {
	Version int          `json:"version"`
	State   SessionState `json:"state"`
}

// Serialize renders the state as a complete, lossless JSON snapshot.
func (s *SessionState) Serialize() ([]byte, error) {
	doc := document{Version: SchemaVersion, State: *s}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Deserialize parses a state document and validates its codes against
// the language catalogs. It either returns a fully valid state or a
// *FormatError; a corrupt document is never partially applied.
func Deserialize(data []byte) (*SessionState, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Reason: "malformed JSON", Err: err}
	}

	if doc.Version == 0 {
		return nil, &FormatError{Reason: "missing version field"}
	}
	if doc.Version > SchemaVersion {
		return nil, &FormatError{Reason: fmt.Sprintf("unsupported version %d", doc.Version)}
	}

	s := doc.State
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate checks that every code resolves against the static catalogs.
func (s *SessionState) validate() error {
	if s.Language == "" {
		return &FormatError{Reason: "missing language"}
	}
	cat, ok := languages.Get(s.Language)
	if !ok {
		return &FormatError{Reason: fmt.Sprintf("unknown language %q", s.Language)}
	}
	if s.Level == "" {
		return &FormatError{Reason: "missing level"}
	}
	if !languages.ValidLevel(s.Level) {
		return &FormatError{Reason: fmt.Sprintf("unknown level %q", s.Level)}
	}
	if s.ExerciseType != "" && !cat.ValidType(s.ExerciseType) {
		return &FormatError{Reason: fmt.Sprintf("unknown exercise type %q for %s", s.ExerciseType, s.Language)}
	}
	return nil
}

// SaveFile atomically writes the serialized state to path: the snapshot
// lands in a temp file first and is renamed into place, so a failure
// mid-write never truncates an existing state file.
func (s *SessionState) SaveFile(path string) error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	return WriteAtomic(path, data)
}

// LoadFile reads and deserializes a state file.
func LoadFile(path string) (*SessionState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return Deserialize(data)
}

// WriteAtomic writes data via a temp file and rename in the target
// directory, creating the directory if needed.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		if werr != nil {
			return fmt.Errorf("write temp file: %w", werr)
		}
		return fmt.Errorf("close temp file: %w", cerr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
