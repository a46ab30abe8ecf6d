package keypairs

import "context"

// KeyPairRepository defines persistence operations for KeyPairMeta.
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, id string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, id string) error
}

// KeyPairService defines the application-level operations exposed to the
// HTTP layer: generating and persisting new key pairs, listing/fetching
// their metadata, and running messages through a stored pair's public or
// private half.
type KeyPairService interface {
	Generate(ctx context.Context, digitCount, rounds int) (*KeyPairMeta, error)
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, id string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, id string) error
	Encrypt(ctx context.Context, id string, plaintext []byte) (string, error)
	Decrypt(ctx context.Context, id string, cipherText string) ([]byte, error)
}
