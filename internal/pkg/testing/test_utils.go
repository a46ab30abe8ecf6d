// Package testing holds small test-only helpers shared across this
// module's integration tests, in the spirit of the teacher's own
// pkg/testing helpers.
package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/pkg/config"
	"rsa_toolkit/internal/pkg/logger"
)

// SetupTestLogger sets up a console logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
