// Package logger builds the application logger. The TUI owns stdout and
// stderr, so logs always go to a file.
package logger

import (
	"go.uber.org/zap"

	"github.com/rehan/quizly/internal/config"
	"github.com/rehan/quizly/internal/store"
)

// New returns a file-backed zap logger. With no log path configured it
// returns a nop logger so TUI output stays clean.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogPath == "" {
		return zap.NewNop(), nil
	}
	if err := store.EnsureDir(cfg.LogPath); err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{cfg.LogPath}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath}

	return zcfg.Build()
}
