package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat caseflow configuration.
type Config struct {
	Version           string `json:"version"`
	CurrentEmployeeID int64  `json:"current_employee_id,omitempty"` // acting employee for CLI calls
}

// dir returns the configuration directory, ~/.caseflow by default.
// CASEFLOW_HOME overrides it for tests and sandboxed setups.
func dir() (string, error) {
	if custom := os.Getenv("CASEFLOW_HOME"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".caseflow"), nil
}

// LoadConfig reads config.json from the caseflow directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig() (*Config, error) {
	base, err := dir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(base, "config.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the caseflow directory.
func SaveConfig(cfg *Config) error {
	base, err := dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(base, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// CurrentEmployee returns the configured acting employee ID, or 0 when no
// config exists yet.
func CurrentEmployee() int64 {
	cfg, err := LoadConfig()
	if err != nil {
		return 0
	}
	return cfg.CurrentEmployeeID
}

// SetCurrentEmployee persists the acting employee ID.
func SetCurrentEmployee(employeeID int64) error {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = &Config{Version: "1"}
	}
	cfg.CurrentEmployeeID = employeeID
	return SaveConfig(cfg)
}
