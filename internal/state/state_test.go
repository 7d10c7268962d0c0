package state

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sample() *SessionState {
	return &SessionState{
		Language:          "polish",
		Level:             "B2",
		ExerciseType:      "letter",
		GeneratedExercise: "Napisz list do przyjaciela o wakacjach.",
		GeneratedHints:    "wakacje, morze, hotel",
		WritingInput:      "Drogi Marku, w zeszłym tygodniu...",
		Feedback: Feedback{
			Mistakes:        "1. \"w zeszłym tygodniu\" is correct here.",
			Recommendations: "Consider varying sentence openings.",
		},
		LastModified: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	orig := sample()
	data, err := orig.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if *got != *orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}

func TestDeserializeRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"truncated", `{"version": 1, "state": {"langu`},
		{"missing version", `{"state": {"language": "polish", "level": "B1"}}`},
		{"future version", `{"version": 99, "state": {"language": "polish", "level": "B1"}}`},
		{"unknown language", `{"version": 1, "state": {"language": "klingon", "level": "B1"}}`},
		{"unknown level", `{"version": 1, "state": {"language": "polish", "level": "Z9"}}`},
		{"unknown type", `{"version": 1, "state": {"language": "polish", "level": "B1", "exercise_type": "sonnet"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Deserialize([]byte(tc.data))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("want *FormatError, got %v", err)
			}
		})
	}
}

func TestDeserializeAcceptsSyntheticTypes(t *testing.T) {
	for _, typ := range []string{"random", "custom"} {
		data := `{"version": 1, "state": {"language": "english", "level": "C1", "exercise_type": "` + typ + `"}}`
		if _, err := Deserialize([]byte(data)); err != nil {
			t.Errorf("type %q: %v", typ, err)
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	orig := sample()
	if err := orig.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.GeneratedExercise != orig.GeneratedExercise {
		t.Errorf("exercise = %q, want %q", got.GeneratedExercise, orig.GeneratedExercise)
	}
}

func TestSaveFilePreservesExistingOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	if err := sample().SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// second save over the same file must fully replace, never truncate
	s2 := sample()
	s2.WritingInput = "changed"
	if err := s2.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(before) == string(after) {
		t.Error("file content unchanged after second save")
	}
	if _, err := Deserialize(after); err != nil {
		t.Errorf("file not valid after replace: %v", err)
	}
}

func TestToMarkdownSectionOrder(t *testing.T) {
	md := sample().ToMarkdown()

	titles := []string{"## Exercise", "## Hints", "## Writing", "## Mistakes", "## Stylistic Errors", "## Recommendations"}
	last := -1
	for _, title := range titles {
		idx := strings.Index(md, title)
		if idx < 0 {
			t.Fatalf("missing section %q", title)
		}
		if idx < last {
			t.Errorf("section %q out of order", title)
		}
		last = idx
	}

	if !strings.HasPrefix(md, "# Writing Exercise (Polish, B2, Letter)") {
		t.Errorf("unexpected header: %q", md[:min(len(md), 60)])
	}
}

func TestToMarkdownPlaceholders(t *testing.T) {
	s := New()
	md := s.ToMarkdown()
	if got := strings.Count(md, "None."); got != 6 {
		t.Errorf("placeholder count = %d, want 6", got)
	}
}

func TestToMarkdownDeterministic(t *testing.T) {
	s := sample()
	if s.ToMarkdown() != s.ToMarkdown() {
		t.Error("markdown rendering not deterministic")
	}
}
