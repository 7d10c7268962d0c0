package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkeyran/language-tutor/internal/app"
	"github.com/mkeyran/language-tutor/internal/config"
	"github.com/mkeyran/language-tutor/internal/exercise"
	"github.com/mkeyran/language-tutor/internal/llm"
	"github.com/mkeyran/language-tutor/internal/store"
	"github.com/mkeyran/language-tutor/internal/tutor"
)

// runApp opens the store, builds the provider and controller, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	// .env in the config dir carries API keys and model overrides.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env:", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctrl, err := buildController(ctx, st.EventRepo())
	if err != nil {
		return err
	}

	// Restore the last language and level, then any saved session on
	// top of that. Both are best-effort.
	if cfg, err := config.LoadApp(); err == nil {
		if cfg.Language != "" {
			_ = ctrl.SetLanguage(cfg.Language)
		}
		if cfg.Level != "" {
			_ = ctrl.SetLevel(cfg.Level)
		}
	}
	_ = ctrl.LoadState()

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		ctrl.SetStatus("Error: API key not configured. Set it in Settings (^P).")
	} else {
		ctrl.SetStatus(fmt.Sprintf("Ready. Provider: %s.", llmCfg.Provider))
	}

	return app.Run(app.Options{Controller: ctrl})
}

// buildController wires provider, exercise service, and session paths.
func buildController(ctx context.Context, events store.EventRepo) (*tutor.Controller, error) {
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		// start anyway; every action surfaces the configuration error
		provider = llm.NewErrorProvider(err)
	}
	svc := exercise.New(provider, exercise.DefaultConfig())

	statePath, err := config.StatePath()
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	exportDir, err := config.ExportDir()
	if err != nil {
		return nil, fmt.Errorf("resolve export dir: %w", err)
	}

	return tutor.New(svc, tutor.Paths{StatePath: statePath, ExportDir: exportDir}), nil
}
