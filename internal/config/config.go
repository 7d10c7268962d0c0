// Package config resolves per-user file locations and the small JSON
// config file that persists selector choices between runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const appDirName = "language-tutor"

// Dir returns the per-user configuration directory
// ($XDG_CONFIG_HOME/language-tutor), creating it if needed.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// StatePath returns the session state file path.
func StatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// ExportDir returns the default Markdown export directory, creating it
// if needed.
func ExportDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	exp := filepath.Join(dir, "export")
	if err := os.MkdirAll(exp, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return exp, nil
}

// EnvPath returns the .env file path inside the config dir.
func EnvPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadEnv loads the config-dir .env file into the process environment.
// A missing file is not an error; shell variables still take effect.
func LoadEnv() error {
	path, err := EnvPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	// Overload so edits from the settings screen win over stale
	// variables from a previous load in the same process.
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// SaveEnv writes key/value pairs to the config-dir .env file,
// preserving unrelated keys already present.
func SaveEnv(vars map[string]string) error {
	path, err := EnvPath()
	if err != nil {
		return err
	}

	existing := map[string]string{}
	if _, statErr := os.Stat(path); statErr == nil {
		existing, err = godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}
	for k, v := range vars {
		existing[k] = v
	}

	if err := godotenv.Write(existing, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// App is the persisted UI configuration: the selectors remembered
// between runs. Distinct from session state, which holds the exercise
// content itself.
type App struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

func appConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadApp reads the persisted UI configuration. A missing file yields
// the zero value without error.
func LoadApp() (App, error) {
	path, err := appConfigPath()
	if err != nil {
		return App{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return App{}, nil
	}
	if err != nil {
		return App{}, fmt.Errorf("read config: %w", err)
	}

	var cfg App
	if err := json.Unmarshal(data, &cfg); err != nil {
		return App{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveApp writes the persisted UI configuration.
func SaveApp(cfg App) error {
	path, err := appConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
