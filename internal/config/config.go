package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds persisted CLI preferences. Everything here has a flag
// equivalent; the file just remembers the user's usual choices.
type Config struct {
	DefaultTarget    string `json:"default_target"`
	OutputFormat     string `json:"output_format"`
	Formatting       string `json:"formatting"`
	KeywordOrder     string `json:"keyword_order"`
	IncludeDefaults  bool   `json:"include_defaults"`
	PreserveUnknown  bool   `json:"preserve_unknown"`
	PreferShortNames bool   `json:"prefer_short_names"`
	Plain            bool   `json:"plain"`
	History          struct {
		Limit int `json:"limit"`
	} `json:"history"`
}

func normalizeOutputFormat(format string) string {
	switch format {
	case "text", "json", "yaml":
		return format
	case "table":
		return "text"
	default:
		return "text"
	}
}

func normalizeFormatting(f string) string {
	switch f {
	case "compact", "readable":
		return f
	default:
		return "compact"
	}
}

func normalizeKeywordOrder(order string) string {
	switch order {
	case "source", "canonical", "alphabetical":
		return order
	default:
		return "source"
	}
}

// GetConfigDir returns the per-user state directory, creating it on first
// use. CONNSTR_CONFIG_DIR overrides the location, which tests rely on.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("CONNSTR_CONFIG_DIR"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".connstr")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return "", err
		}
	}
	return configDir, nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetReplHistoryPath is where the interactive prompt keeps its line history.
func GetReplHistoryPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "repl_history"), nil
}

// LoadConfig reads the config file, filling defaults for anything missing.
// A missing file is not an error.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := &Config{}
		cfg.OutputFormat = "text"
		cfg.Formatting = "compact"
		cfg.KeywordOrder = "source"
		cfg.History.Limit = 20
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.OutputFormat = normalizeOutputFormat(cfg.OutputFormat)
	cfg.Formatting = normalizeFormatting(cfg.Formatting)
	cfg.KeywordOrder = normalizeKeywordOrder(cfg.KeywordOrder)
	if cfg.History.Limit <= 0 {
		cfg.History.Limit = 20
	}
	return &cfg, nil
}

// SaveConfig atomically writes the config file.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	_ = os.Remove(path)
	return os.Rename(tmp, path)
}
