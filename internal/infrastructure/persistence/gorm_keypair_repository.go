package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/infrastructure/persistence/models"
	"rsa_toolkit/internal/pkg/logger"
)

// gormKeyPairRepository is a GORM-backed keypairs.KeyPairRepository.
type gormKeyPairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyPairRepository creates a new keypairs.KeyPairRepository backed
// by the given *gorm.DB.
func NewGormKeyPairRepository(db *gorm.DB, logger logger.Logger) (keypairs.KeyPairRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection cannot be nil")
	}
	return &gormKeyPairRepository{db: db, logger: logger}, nil
}

// Create inserts a new key pair row.
func (r *gormKeyPairRepository) Create(ctx context.Context, keyPair *keypairs.KeyPairMeta) error {
	var model models.KeyPairModel
	model.FromDomain(keyPair)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.logger.Error("failed to create key pair: ", err)
		return fmt.Errorf("failed to create key pair: %w", err)
	}
	return nil
}

// List returns key pairs matching query, applying pagination and sorting.
func (r *gormKeyPairRepository) List(ctx context.Context, query *keypairs.KeyPairQuery) ([]*keypairs.KeyPairMeta, error) {
	db := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query != nil {
		if query.SortBy != "" {
			order := query.SortBy
			if query.SortOrder == "asc" {
				order += " asc"
			} else {
				order += " desc"
			}
			db = db.Order(order)
		}
		if query.Limit > 0 {
			db = db.Limit(query.Limit)
		}
		if query.Offset > 0 {
			db = db.Offset(query.Offset)
		}
	}

	var rows []models.KeyPairModel
	if err := db.Find(&rows).Error; err != nil {
		r.logger.Error("failed to list key pairs: ", err)
		return nil, fmt.Errorf("failed to list key pairs: %w", err)
	}

	result := make([]*keypairs.KeyPairMeta, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToDomain())
	}
	return result, nil
}

// GetByID retrieves a key pair by its id.
func (r *gormKeyPairRepository) GetByID(ctx context.Context, id string) (*keypairs.KeyPairMeta, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("key pair with id %s not found: %w", id, err)
		}
		r.logger.Error("failed to get key pair ", id, ": ", err)
		return nil, fmt.Errorf("failed to get key pair: %w", err)
	}
	return model.ToDomain(), nil
}

// DeleteByID removes a key pair row by its id.
func (r *gormKeyPairRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.KeyPairModel{}, "id = ?", id)
	if result.Error != nil {
		r.logger.Error("failed to delete key pair ", id, ": ", result.Error)
		return fmt.Errorf("failed to delete key pair: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("key pair with id %s not found", id)
	}
	return nil
}
