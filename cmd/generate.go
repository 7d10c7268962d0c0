package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkeyran/language-tutor/internal/config"
	"github.com/mkeyran/language-tutor/internal/exercise"
	"github.com/mkeyran/language-tutor/internal/languages"
	"github.com/mkeyran/language-tutor/internal/llm"
	"github.com/mkeyran/language-tutor/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a writing exercise without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("language")
		level, _ := cmd.Flags().GetString("level")
		exType, _ := cmd.Flags().GetString("type")

		if err := config.LoadEnv(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}

		cat, ok := languages.Get(lang)
		if !ok {
			return fmt.Errorf("unknown language %q", lang)
		}
		if !languages.ValidLevel(level) {
			return fmt.Errorf("unknown level %q", level)
		}
		def, err := cat.Resolve(exType)
		if err != nil {
			return err
		}

		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := exercise.New(provider, exercise.DefaultConfig())

		ex, err := svc.Generate(ctx, exercise.GenerateInput{
			Language:   cat,
			Level:      level,
			Definition: def,
		})
		if err != nil {
			return err
		}

		fmt.Printf("# %s (%s, %s)\n\n", def.Name, cat.Name, level)
		fmt.Println(ex.Text)
		if ex.Hints != "" {
			fmt.Println("\n## Hints")
			fmt.Println(ex.Hints)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("language", "polish", "Target language")
	generateCmd.Flags().String("level", "B1", "Proficiency level (A1-C2)")
	generateCmd.Flags().String("type", "random", "Exercise type code, or 'random'")
}
