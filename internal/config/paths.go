package config

import (
	"os"
	"path/filepath"
)

// DodoPath returns the root directory for dodo data.
// It uses $DODO_PATH if set, otherwise defaults to ~/.dodo.
func DodoPath() string {
	if v := os.Getenv("DODO_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dodo")
	}
	return filepath.Join(home, ".dodo")
}

// ConfigPath returns the path to the dodo config file.
func ConfigPath() string {
	return filepath.Join(DodoPath(), "config.jsonc")
}

// DotenvPath returns the path to the dodo .env file.
func DotenvPath() string {
	return filepath.Join(DodoPath(), ".env")
}
