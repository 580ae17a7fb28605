// Package config loads the optional goaleasy config file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds goaleasy settings. Every field has a working default; the
// config file is optional.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// Notifications configures the local notification channel.
	Notifications NotificationsConfig `yaml:"notifications"`

	// Language is the default UI language (en or hi) applied on first run.
	Language string `yaml:"language"`
}

// NotificationsConfig configures the notification side-channel.
type NotificationsConfig struct {
	ChannelID   string `yaml:"channel_id"`
	ChannelName string `yaml:"channel_name"`
	// ReminderHour is the local hour for next-day goal reminders.
	ReminderHour int `yaml:"reminder_hour"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Notifications: NotificationsConfig{
			ChannelID:    "goaleasy",
			ChannelName:  "GoalEasy Notifications",
			ReminderHour: 8,
		},
		Language: "en",
	}
}

// Load reads the config file at path, layering it over the defaults. A
// missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Notifications.ReminderHour < 0 || cfg.Notifications.ReminderHour > 23 {
		return cfg, fmt.Errorf("reminder_hour must be between 0 and 23, got %d", cfg.Notifications.ReminderHour)
	}
	return cfg, nil
}
