package exercise

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mkeyran/language-tutor/internal/languages"
	"github.com/mkeyran/language-tutor/internal/llm"
)

func polishLetter(t *testing.T) (*languages.Catalog, languages.Definition) {
	t.Helper()
	cat, ok := languages.Get("polish")
	if !ok {
		t.Fatal("polish catalog missing")
	}
	def, ok := cat.Definition("letter")
	if !ok {
		t.Fatal("letter definition missing")
	}
	return cat, def
}

func TestGenerateParsesStructuredResponse(t *testing.T) {
	cat, def := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"exercise": "Napisz list do kolegi.", "hints": "- Drogi..."}`)})

	svc := New(mock, DefaultConfig())
	ex, err := svc.Generate(context.Background(), GenerateInput{Language: cat, Level: "B1", Definition: def})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if ex.Text != "Napisz list do kolegi." {
		t.Errorf("Text = %q", ex.Text)
	}
	if ex.Hints != "- Drogi..." {
		t.Errorf("Hints = %q", ex.Hints)
	}
}

func TestGeneratePromptContainsParameters(t *testing.T) {
	cat, def := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"exercise": "ok", "hints": ""}`)})

	svc := New(mock, DefaultConfig())
	if _, err := svc.Generate(context.Background(), GenerateInput{Language: cat, Level: "C1", Definition: def}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	call := mock.LastCall()
	prompt := call.Messages[0].Content
	for _, want := range []string{"Polish", "C1", def.Name, "words"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if call.Schema != ExerciseSchema {
		t.Error("exercise schema not attached to request")
	}
}

func TestGenerateRejectsEmptyExercise(t *testing.T) {
	cat, def := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"exercise": "", "hints": ""}`)})

	svc := New(mock, DefaultConfig())
	_, err := svc.Generate(context.Background(), GenerateInput{Language: cat, Level: "B1", Definition: def})
	if err == nil {
		t.Fatal("want error for empty exercise text")
	}
}

func TestCheckReturnsFeedback(t *testing.T) {
	cat, def := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"mistakes": "- case error", "stylistic_errors": "none.", "recommendations": "Read more."}`)})

	svc := New(mock, DefaultConfig())
	fb, err := svc.Check(context.Background(), CheckInput{
		Language: cat, Level: "B1", Definition: def,
		Exercise: "Napisz list.", Writing: "Drogi Marku...",
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if fb.Mistakes != "- case error" {
		t.Errorf("Mistakes = %q", fb.Mistakes)
	}
	if fb.StyleErrors != "" {
		t.Errorf("StyleErrors = %q, want empty", fb.StyleErrors)
	}
	if fb.Recommendations != "Read more." {
		t.Errorf("Recommendations = %q", fb.Recommendations)
	}

	call := mock.LastCall()
	if !strings.Contains(call.Messages[0].Content, "Drogi Marku") {
		t.Error("writing not included in check prompt")
	}
}

func TestHintsForCustomExercise(t *testing.T) {
	cat, _ := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"hints": "- przydatne zwroty"}`)})

	svc := New(mock, DefaultConfig())
	hints, err := svc.Hints(context.Background(), HintsInput{Language: cat, Level: "A2", Exercise: "Opisz swój dzień."})
	if err != nil {
		t.Fatalf("Hints: %v", err)
	}
	if hints != "- przydatne zwroty" {
		t.Errorf("hints = %q", hints)
	}
}

func TestAnswerIncludesExerciseContext(t *testing.T) {
	cat, _ := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`Use the genitive case after "szukać".`)})

	svc := New(mock, DefaultConfig())
	answer, err := svc.Answer(context.Background(), AnswerInput{
		Language: cat, Level: "B2", ExerciseType: "Letter",
		Exercise: "Napisz list.", Question: "Which case after szukać?",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(answer, "genitive") {
		t.Errorf("answer = %q", answer)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "Napisz list.") {
		t.Error("exercise context missing from prompt")
	}
}

func TestGenerateVariesNonce(t *testing.T) {
	cat, def := polishLetter(t)
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"exercise": "a", "hints": ""}`)})
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"exercise": "b", "hints": ""}`)})

	svc := New(mock, DefaultConfig())
	in := GenerateInput{Language: cat, Level: "B1", Definition: def}
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
}
