package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rsa_toolkit/internal/domain/bignat"
	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/domain/rsacore"
	"rsa_toolkit/internal/infrastructure/rng"
	"rsa_toolkit/internal/pkg/logger"
)

// keyPairService implements keypairs.KeyPairService: it is the only
// component that talks to both the repository and the rsacore library.
type keyPairService struct {
	keyPairRepo keypairs.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairService creates a new keypairs.KeyPairService instance.
func NewKeyPairService(keyPairRepo keypairs.KeyPairRepository, logger logger.Logger) (keypairs.KeyPairService, error) {
	return &keyPairService{keyPairRepo: keyPairRepo, logger: logger}, nil
}

// Generate creates a fresh RSA key pair and persists its metadata.
func (s *keyPairService) Generate(ctx context.Context, digitCount, rounds int) (*keypairs.KeyPairMeta, error) {
	pair, err := rsacore.GenerateKeyPair(digitCount, rounds, rng.NewSplitMix64(0))
	if err != nil {
		return nil, fmt.Errorf("key generation failed: %w", err)
	}

	meta := &keypairs.KeyPairMeta{
		ID:              uuid.New().String(),
		Modulus:         pair.Public.Modulus.String(),
		PublicExponent:  pair.Public.Exponent.String(),
		PrivateExponent: pair.Private.Exponent.String(),
		DigitCount:      digitCount,
		DateTimeCreated: time.Now(),
	}

	if err := s.keyPairRepo.Create(ctx, meta); err != nil {
		s.logger.Error("failed to persist key pair: ", err)
		return nil, fmt.Errorf("%w", err)
	}

	return meta, nil
}

// List retrieves key pair metadata matching query.
func (s *keyPairService) List(ctx context.Context, query *keypairs.KeyPairQuery) ([]*keypairs.KeyPairMeta, error) {
	list, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// GetByID retrieves a single key pair's metadata by its ID.
func (s *keyPairService) GetByID(ctx context.Context, id string) (*keypairs.KeyPairMeta, error) {
	meta, err := s.keyPairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return meta, nil
}

// DeleteByID removes a key pair's metadata by its ID.
func (s *keyPairService) DeleteByID(ctx context.Context, id string) error {
	if err := s.keyPairRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Encrypt runs plaintext through the stored key pair's public half.
func (s *keyPairService) Encrypt(ctx context.Context, id string, plaintext []byte) (string, error) {
	meta, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	publicKey, err := toRSAKey(meta.Modulus, meta.PublicExponent)
	if err != nil {
		return "", err
	}

	cipherText, err := rsacore.Encrypt(plaintext, publicKey)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return cipherText, nil
}

// Decrypt runs a ciphertext string through the stored key pair's private
// half.
func (s *keyPairService) Decrypt(ctx context.Context, id string, cipherText string) ([]byte, error) {
	meta, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	privateKey, err := toRSAKey(meta.Modulus, meta.PrivateExponent)
	if err != nil {
		return nil, err
	}

	plainText, err := rsacore.Decrypt(cipherText, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return plainText, nil
}

// toRSAKey rebuilds an rsacore.Key from its decimal-string persisted form.
func toRSAKey(modulus, exponent string) (rsacore.Key, error) {
	m, err := bignat.FromString(modulus)
	if err != nil {
		return rsacore.Key{}, fmt.Errorf("stored modulus is corrupt: %w", err)
	}
	e, err := bignat.FromString(exponent)
	if err != nil {
		return rsacore.Key{}, fmt.Errorf("stored exponent is corrupt: %w", err)
	}
	return rsacore.Key{Modulus: m, Exponent: e}, nil
}
