// Package config loads application settings from an optional config file
// and QUIZLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env                 string `mapstructure:"env"`                   // current application environment (local, dev, production)
	User                string `mapstructure:"user"`                  // default user name, skips the welcome prompt when set
	QuestionsPerSession int    `mapstructure:"questions_per_session"` // question target for a new session
	BankPath            string `mapstructure:"bank_path"`             // path to a question bank JSON file; empty uses the embedded bank
	DBPath              string `mapstructure:"db_path"`               // path to the SQLite database; empty uses the default location
	LogPath             string `mapstructure:"log_path"`              // path to the log file; empty logs next to the database
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("quizly")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "quizly"))
	}

	v.SetDefault("env", "local")
	v.SetDefault("questions_per_session", 10)

	v.SetEnvPrefix("quizly")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// QUIZLY_DB predates the prefix scheme; keep honoring it.
	_ = v.BindEnv("db_path", "QUIZLY_DB", "QUIZLY_DB_PATH")
	_ = v.BindEnv("env", "QUIZLY_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.QuestionsPerSession < 1 {
		return nil, fmt.Errorf("questions_per_session must be positive, got %d", cfg.QuestionsPerSession)
	}

	return &cfg, nil
}
