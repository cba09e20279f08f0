// Package logging sets up the structured logger. The terminal is owned by
// the game screen, so log output goes to a file rather than stdout.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a production zap logger writing JSON lines to the given file.
// Pass debug=true to lower the level and include caller information useful
// during development.
func New(path string, debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Handy for tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
