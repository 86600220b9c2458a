// Package file loads CLI defaults from a TOML config file, so the
// client ID and directories do not have to be repeated on every run.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings the export command accepts. Every field is
// optional; command-line flags take precedence over config values.
type Config struct {
	ClientID       string   `toml:"client_id"`
	TenantID       string   `toml:"tenant_id"`
	OutputDir      string   `toml:"output_dir"`
	VectorstoreDir string   `toml:"vectorstore_dir"`
	Collection     string   `toml:"collection"`
	PauseAfter     int      `toml:"pause_after"`
	PauseSeconds   int      `toml:"pause_seconds"`
	Scopes         []string `toml:"scopes"`
	EmbeddingModel string   `toml:"embedding_model"`
	OllamaURL      string   `toml:"ollama_url"`
}

// DefaultPath returns ~/.onenote-import/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".onenote-import", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields a zero
// Config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
