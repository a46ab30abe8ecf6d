package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyPairRequest is the request body for POST /keypairs.
type GenerateKeyPairRequest struct {
	DigitCount int `json:"digitCount" validate:"required,min=7,max=200"`
	Rounds     int `json:"rounds" validate:"omitempty,min=1,max=64"`
}

// Validate checks the request body against its struct tags, filling in the
// Miller-Rabin round count default when omitted.
func (r *GenerateKeyPairRequest) Validate() error {
	if r.Rounds == 0 {
		r.Rounds = 10
	}
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// KeyPairMetaResponse is returned for a generated or fetched key pair. It
// never carries the private exponent.
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"publicExponent"`
	DigitCount      int       `json:"digitCount"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// EncryptRequest is the request body for POST /keypairs/:id/encrypt.
type EncryptRequest struct {
	Message string `json:"message" validate:"required"`
}

// Validate checks the request body against its struct tags.
func (r *EncryptRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// EncryptResponse is returned by POST /keypairs/:id/encrypt.
type EncryptResponse struct {
	CipherText string `json:"cipherText"`
}

// DecryptRequest is the request body for POST /keypairs/:id/decrypt.
type DecryptRequest struct {
	CipherText string `json:"cipherText" validate:"required"`
}

// Validate checks the request body against its struct tags.
func (r *DecryptRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// DecryptResponse is returned by POST /keypairs/:id/decrypt.
type DecryptResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the standard JSON informational body.
type InfoResponse struct {
	Message string `json:"message"`
}
