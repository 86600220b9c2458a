package devicecode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// defaultCachePath returns ~/.onenote-import/token_cache.json.
func defaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".onenote-import", "token_cache.json"), nil
}

// loadCache reads a cached token. A missing file is not an error; it
// just means the user has never signed in.
func loadCache(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("decode cache file: %w", err)
	}
	return &token, nil
}

// saveCache writes the token cache with owner-only permissions.
func saveCache(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
