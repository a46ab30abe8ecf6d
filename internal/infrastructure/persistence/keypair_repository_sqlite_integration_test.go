//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/infrastructure/persistence/models"
	"rsa_toolkit/internal/pkg/config"
)

func TestKeyPairSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	keyPair := CreateTestKeyPair(t)

	err := ctx.KeyPairRepo.Create(context.Background(), keyPair)
	require.NoError(t, err)

	var created models.KeyPairModel
	err = ctx.DB.First(&created, "id = ?", keyPair.ID).Error
	require.NoError(t, err)
	assert.Equal(t, keyPair.ID, created.ID)
	assert.Equal(t, keyPair.Modulus, created.Modulus)
}

func TestKeyPairSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	keyPair := CreateTestKeyPair(t)

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	require.NoError(t, err)
	assert.Equal(t, keyPair.ID, fetched.ID)
	assert.Equal(t, keyPair.PublicExponent, fetched.PublicExponent)
}

func TestKeyPairSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	keyPair1 := CreateTestKeyPair(t)
	keyPair2 := CreateTestKeyPair(t)

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair1))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair2))

	list, err := ctx.KeyPairRepo.List(context.Background(), keypairs.NewKeyPairQuery())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestKeyPairSqliteRepository_List_WithPagination(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), CreateTestKeyPair(t)))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), CreateTestKeyPair(t)))

	query := &keypairs.KeyPairQuery{Limit: 1, Offset: 1}
	paged, err := ctx.KeyPairRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestKeyPairSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	keyPair := CreateTestKeyPair(t)

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))
	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID))

	var deleted models.KeyPairModel
	err := ctx.DB.First(&deleted, "id = ?", keyPair.ID).Error
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestKeyPairRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), "does-not-exist")
	assert.Error(t, err)
}

func TestKeyPairRepository_DeleteByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.KeyPairRepo.DeleteByID(context.Background(), "does-not-exist")
	assert.Error(t, err)
}
