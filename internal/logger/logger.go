package logger

import (
	"go.uber.org/zap"

	"github.com/Moiseysus/Itabot/internal/config"
)

// New builds the process logger: JSON output in production, console otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
