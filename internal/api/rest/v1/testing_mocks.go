//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rsa_toolkit/internal/domain/keypairs"
)

// MockKeyPairService is a mock implementation of keypairs.KeyPairService.
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context, digitCount, rounds int) (*keypairs.KeyPairMeta, error) {
	args := m.Called(ctx, digitCount, rounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keypairs.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) List(ctx context.Context, query *keypairs.KeyPairQuery) ([]*keypairs.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keypairs.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) GetByID(ctx context.Context, id string) (*keypairs.KeyPairMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keypairs.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockKeyPairService) Encrypt(ctx context.Context, id string, plaintext []byte) (string, error) {
	args := m.Called(ctx, id, plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockKeyPairService) Decrypt(ctx context.Context, id string, cipherText string) ([]byte, error) {
	args := m.Called(ctx, id, cipherText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
