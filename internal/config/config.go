// Package config handles dodo's paths, dotenv and JSONC configuration.
package config

import "path/filepath"

// Config is the root configuration for dodo.
type Config struct {
	Storage  StorageConfig  `json:"storage"`
	Defaults DefaultsConfig `json:"defaults"`
}

// StorageConfig locates the persisted task file. The next-id counter
// sidecar lives next to it as <file>.meta.
type StorageConfig struct {
	File string `json:"file"` // default: $DODO_PATH/tasks.tsv
}

// DefaultsConfig holds the defaults applied when a command omits a flag.
type DefaultsConfig struct {
	Priority string `json:"priority"` // low|med|high (default: med)
	Scope    string `json:"scope"`    // all|open|done (default: open)
	Sort     string `json:"sort"`     // id|due|prio (default: id)
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields.
func applyDefaults(cfg *Config) {
	if cfg.Storage.File == "" {
		cfg.Storage.File = filepath.Join(DodoPath(), "tasks.tsv")
	}
	if cfg.Defaults.Priority == "" {
		cfg.Defaults.Priority = "med"
	}
	if cfg.Defaults.Scope == "" {
		cfg.Defaults.Scope = "open"
	}
	if cfg.Defaults.Sort == "" {
		cfg.Defaults.Sort = "id"
	}
}
