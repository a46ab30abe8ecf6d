//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/infrastructure/persistence"
	pkgTesting "rsa_toolkit/internal/pkg/testing"
)

// TestServices holds all application services and dependencies for
// integration tests.
type TestServices struct {
	KeyPairService keypairs.KeyPairService
	DBContext      *persistence.TestContext
}

// SetupTestServices initializes the application services for integration
// tests against a fresh test database.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	keyPairService, err := NewKeyPairService(dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create KeyPairService")

	return &TestServices{
		KeyPairService: keyPairService,
		DBContext:      dbContext,
	}
}
