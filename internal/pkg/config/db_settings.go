package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants.
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings holds configuration for the optional key-pair store.
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	DBName string `mapstructure:"name" validate:"required"`
}

// Validate checks that all fields in DatabaseSettings are valid.
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
