// Package exercise produces writing exercises and feedback using an
// LLM provider.
package exercise

import (
	"context"
	"fmt"

	"github.com/mkeyran/language-tutor/internal/languages"
	"github.com/mkeyran/language-tutor/internal/llm"
)

// Exercise is a generated writing task plus optional hints.
type Exercise struct {
	Text  string
	Hints string
}

// Feedback is the categorized result of a writing check. Each section
// is markdown; an empty section means nothing was found.
type Feedback struct {
	Mistakes        string
	StyleErrors     string
	Recommendations string
}

// GenerateInput describes the exercise to generate.
type GenerateInput struct {
	Language   *languages.Catalog
	Level      string
	Definition languages.Definition
}

// HintsInput describes a user-authored exercise needing hints.
type HintsInput struct {
	Language *languages.Catalog
	Level    string
	Exercise string
}

// CheckInput describes a writing submission to grade.
type CheckInput struct {
	Language   *languages.Catalog
	Level      string
	Definition languages.Definition
	Exercise   string
	Writing    string
}

// AnswerInput is a free-form question asked in the context of the
// current exercise.
type AnswerInput struct {
	Language     *languages.Catalog
	Level        string
	ExerciseType string
	Exercise     string
	Question     string
}

// Config holds generation limits.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns limits suitable for exercise-sized outputs.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Service implements exercise generation and checking on top of an
// LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Generate produces a single writing exercise for the given language,
// level, and exercise type.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratePrompt(input)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exercise generation failed: %w", err)
	}

	ex := parseExercise(resp.Content)
	if ex.Text == "" {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("no exercise text in response"),
		}
	}
	return ex, nil
}

// Hints produces hints for a user-authored exercise.
func (s *Service) Hints(ctx context.Context, input HintsInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "custom-hints")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintsPrompt(input)},
		},
		Schema:      HintsSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("hint generation failed: %w", err)
	}

	return parseHints(resp.Content), nil
}

// Check grades the writing against the exercise and returns
// categorized feedback. Responses that do not match the requested
// structure degrade gracefully: recognizable sections are extracted
// and anything unparseable lands in Recommendations rather than being
// dropped.
func (s *Service) Check(ctx context.Context, input CheckInput) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "writing-check")

	req := llm.Request{
		System: checkSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCheckPrompt(input)},
		},
		Schema:    FeedbackSchema,
		MaxTokens: s.config.MaxTokens,
		// grading wants consistency over variety
		Temperature: 0.2,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("writing check failed: %w", err)
	}

	fb := parseFeedback(resp.Content)
	return &fb, nil
}

// Answer responds to a learner question about the current exercise.
func (s *Service) Answer(ctx context.Context, input AnswerInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "qa")

	req := llm.Request{
		System: qaSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerPrompt(input)},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("question answering failed: %w", err)
	}

	return resp.Text(), nil
}
