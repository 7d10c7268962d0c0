// Package settings is the configuration screen: API key, provider,
// and model, persisted to the .env file in the config directory.
package settings

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkeyran/language-tutor/internal/config"
	"github.com/mkeyran/language-tutor/internal/screen"
	"github.com/mkeyran/language-tutor/internal/tutor"
	"github.com/mkeyran/language-tutor/internal/ui/components"
	"github.com/mkeyran/language-tutor/internal/ui/layout"
	"github.com/mkeyran/language-tutor/internal/ui/theme"
)

// field indexes into the focus cycle.
const (
	fieldProvider = iota
	fieldAPIKey
	fieldModel
	fieldCount
)

var providerOptions = []components.Option{
	{Code: "openrouter", Name: "OpenRouter"},
	{Code: "anthropic", Name: "Anthropic"},
	{Code: "openai", Name: "OpenAI"},
	{Code: "gemini", Name: "Gemini"},
}

// keyEnvVar maps a provider to the env var its key is stored under.
var keyEnvVar = map[string]string{
	"openrouter": "OPENROUTER_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"gemini":     "GEMINI_API_KEY",
}

// modelEnvVar maps a provider to the env var overriding its model.
var modelEnvVar = map[string]string{
	"openrouter": "TUTOR_OPENROUTER_MODEL",
	"anthropic":  "TUTOR_ANTHROPIC_MODEL",
	"openai":     "TUTOR_OPENAI_MODEL",
	"gemini":     "TUTOR_GEMINI_MODEL",
}

// SettingsScreen edits LLM provider configuration. Changes take effect
// on the next launch; the active session keeps its provider.
type SettingsScreen struct {
	ctrl *tutor.Controller

	provider components.Selector
	apiKey   components.TextInput
	model    components.TextInput

	focus   int
	notice  string
	envPath string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen pre-filled from the environment.
func New(ctrl *tutor.Controller) *SettingsScreen {
	s := &SettingsScreen{
		ctrl:   ctrl,
		apiKey: components.NewTextInput("API key", "sk-or-...", true),
		model:  components.NewTextInput("Model", "provider default", false),
		focus:  fieldProvider,
	}
	s.provider = components.NewSelector("Provider", providerOptions, os.Getenv("TUTOR_LLM_PROVIDER"), func(string) tea.Cmd {
		return func() tea.Msg { return providerPickedMsg{} }
	})
	if p, err := config.EnvPath(); err == nil {
		s.envPath = p
	}
	s.fillFromEnv()
	return s
}

// providerPickedMsg triggers a refill of the key and model fields for
// the newly selected provider.
type providerPickedMsg struct{}

func (s *SettingsScreen) fillFromEnv() {
	p := s.provider.Value()
	s.apiKey.SetValue(os.Getenv(keyEnvVar[p]))
	s.model.SetValue(os.Getenv(modelEnvVar[p]))
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case providerPickedMsg:
		s.fillFromEnv()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.setFocus((s.focus + 1) % fieldCount)
			return s, s.focusCmd()
		case "shift+tab":
			s.setFocus((s.focus + fieldCount - 1) % fieldCount)
			return s, s.focusCmd()
		case "enter":
			s.save()
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldProvider:
		s.provider, cmd = s.provider.Update(msg)
	case fieldAPIKey:
		s.apiKey, cmd = s.apiKey.Update(msg)
	case fieldModel:
		s.model, cmd = s.model.Update(msg)
	}
	return s, cmd
}

func (s *SettingsScreen) setFocus(f int) {
	s.focus = f
	s.apiKey.Blur()
	s.model.Blur()
}

func (s *SettingsScreen) focusCmd() tea.Cmd {
	switch s.focus {
	case fieldAPIKey:
		return s.apiKey.Focus()
	case fieldModel:
		return s.model.Focus()
	}
	return nil
}

// save writes the provider choice, key, and model to the .env file and
// into the current process environment.
func (s *SettingsScreen) save() {
	p := s.provider.Value()
	entries := map[string]string{
		"TUTOR_LLM_PROVIDER": p,
		keyEnvVar[p]:         s.apiKey.Value(),
	}
	if m := s.model.Value(); m != "" {
		entries[modelEnvVar[p]] = m
	}

	if err := config.SaveEnv(entries); err != nil {
		s.notice = fmt.Sprintf("Error saving: %v", err)
		return
	}
	for k, v := range entries {
		os.Setenv(k, v)
	}

	snap := s.ctrl.Snapshot()
	if err := config.SaveApp(config.App{Language: snap.State.Language, Level: snap.State.Level}); err != nil {
		s.notice = fmt.Sprintf("Error saving: %v", err)
		return
	}

	s.notice = "Saved. Restart to apply the provider change."
}

func (s *SettingsScreen) View(width, height int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.provider.View(s.focus == fieldProvider),
		"",
		s.apiKey.View(s.focus == fieldAPIKey),
		"",
		s.model.View(s.focus == fieldModel),
	)

	blocks := []string{
		theme.Card.Width(inner).Render(theme.SectionTitle.Render("LLM provider") + "\n" + form),
		theme.Hint.Render("  Keys are stored in " + s.envPath),
	}
	if s.notice != "" {
		blocks = append(blocks, theme.StatusInfo.Render("  "+s.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
