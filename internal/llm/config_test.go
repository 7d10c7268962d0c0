package llm

import "testing"

// clearLLMEnv blanks every env var ConfigFromEnv and DiscoverConfig
// read, so tests do not pick up keys from the host shell.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"TUTOR_LLM_PROVIDER",
		"TUTOR_OPENROUTER_API_KEY", "TUTOR_OPENROUTER_MODEL", "TUTOR_OPENROUTER_BASE_URL",
		"TUTOR_ANTHROPIC_API_KEY", "TUTOR_ANTHROPIC_MODEL",
		"TUTOR_OPENAI_API_KEY", "TUTOR_OPENAI_MODEL", "TUTOR_OPENAI_BASE_URL",
		"TUTOR_GEMINI_API_KEY", "TUTOR_GEMINI_MODEL",
		"OPENROUTER_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearLLMEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Fatalf("expected default provider 'openrouter', got %q", cfg.Provider)
	}
	if cfg.OpenRouter.Model != "google/gemini-2.5-flash" {
		t.Fatalf("unexpected default model: %q", cfg.OpenRouter.Model)
	}
	if cfg.HasKey() {
		t.Fatal("expected no key with a clean environment")
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Fatalf("expected 1 attempt by default, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_TutorVars(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("TUTOR_LLM_PROVIDER", "openai")
	t.Setenv("TUTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("TUTOR_OPENAI_MODEL", "gpt-5-mini")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected provider 'openai', got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("expected key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-5-mini" {
		t.Fatalf("expected model override, got %q", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_TutorVarsWinOverDiscovery(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("TUTOR_LLM_PROVIDER", "anthropic")
	t.Setenv("TUTOR_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected provider 'anthropic', got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("expected anthropic key, got %q", cfg.Anthropic.APIKey)
	}
}

func TestConfigFromEnv_FallsBackToDiscovery(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected discovered provider 'gemini', got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("expected discovered key, got %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	t.Setenv("OPENAI_API_KEY", "sk-oa")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "openrouter" {
		t.Fatalf("expected openrouter to win, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneFound(t *testing.T) {
	clearLLMEnv(t)

	_, ok := DiscoverConfig()
	if ok {
		t.Fatal("expected no config with a clean environment")
	}
}
