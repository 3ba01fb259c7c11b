package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"sitandwalk/internal/core/model"
)

const configFileName = "config.yaml"

const maxTickIntervalMillis = 1000

type yamlConfig struct {
	ThresholdMinutes int `yaml:"threshold_minutes"`
	TickIntervalMs   int `yaml:"tick_interval_ms"`
}

// LoadConfig reads startup defaults from the user config directory.
// The file is optional and never written by the application, so nothing
// the user changes at runtime survives a restart.
func LoadConfig(appName string) (model.ReminderConfig, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return model.DefaultReminderConfig(), err
	}
	return loadConfigFile(configPath)
}

// loadConfigFile reads startup defaults from configPath.
// If the file does not exist, default settings are returned.
func loadConfigFile(configPath string) (model.ReminderConfig, error) {
	config := model.DefaultReminderConfig()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

// resolveConfigPath returns where LoadConfig looks for appName's file.
func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.ReminderConfig, fileData yamlConfig) {
	if fileData.ThresholdMinutes > 0 {
		config.ThresholdMinutes = fileData.ThresholdMinutes
	}
	if fileData.TickIntervalMs > 0 && fileData.TickIntervalMs <= maxTickIntervalMillis {
		config.TickInterval = time.Duration(fileData.TickIntervalMs) * time.Millisecond
	}
}
