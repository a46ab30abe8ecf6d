//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/infrastructure/persistence/models"
	"rsa_toolkit/internal/pkg/config"
	pkgTesting "rsa_toolkit/internal/pkg/testing"
)

// TestContext holds test database and repositories.
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keypairs.KeyPairRepository
}

// SetupTestDB initializes a test database with automatic cleanup.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type:   config.SqliteDbType,
			DSN:    ":memory:",
			DBName: "keypairs_test",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.KeyPairModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := pkgTesting.SetupTestLogger(t)

	keyPairRepo, err := NewGormKeyPairRepository(db, logger)
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: keyPairRepo,
	}
}

// CreateTestKeyPair returns a KeyPairMeta populated with placeholder
// decimal digits, suitable for repository round-trip tests that don't need
// a genuinely factorable modulus.
func CreateTestKeyPair(t *testing.T) *keypairs.KeyPairMeta {
	t.Helper()

	return &keypairs.KeyPairMeta{
		ID:              uuid.NewString(),
		Modulus:         "8961",
		PublicExponent:  "13",
		PrivateExponent: "3277",
		DigitCount:      4,
		DateTimeCreated: time.Now(),
	}
}
