package models

import (
	"time"

	"rsa_toolkit/internal/domain/keypairs"
)

// KeyPairModel is the GORM database model for a persisted RSA key pair
// (infrastructure concern). The modulus and both exponents are stored as
// plain decimal-digit text columns — a BigNat's String() form is small and
// text-safe, so no blob column is needed.
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Modulus         string    `gorm:"not null;type:text"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	DigitCount      int       `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM.
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts a GORM model to the domain entity.
func (m *KeyPairModel) ToDomain() *keypairs.KeyPairMeta {
	return &keypairs.KeyPairMeta{
		ID:              m.ID,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		PrivateExponent: m.PrivateExponent,
		DigitCount:      m.DigitCount,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts a domain entity to the GORM model.
func (m *KeyPairModel) FromDomain(k *keypairs.KeyPairMeta) {
	m.ID = k.ID
	m.Modulus = k.Modulus
	m.PublicExponent = k.PublicExponent
	m.PrivateExponent = k.PrivateExponent
	m.DigitCount = k.DigitCount
	m.DateTimeCreated = k.DateTimeCreated
}
