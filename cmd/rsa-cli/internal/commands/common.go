package commands

import (
	"fmt"

	"rsa_toolkit/internal/pkg/config"
	"rsa_toolkit/internal/pkg/logger"
)

// setupLogger initializes and returns the shared console logger used by
// every command handler in this package.
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
