package rsacore

import (
	"fmt"
	"strings"

	"rsa_toolkit/internal/domain/bignat"
	"rsa_toolkit/internal/domain/codec"
)

// Encrypt RSA-encrypts plaintext with key (normally the recipient's public
// key), returning the ciphertext in the original wire format: one decimal
// number per chunk, each followed by a single space.
func Encrypt(plaintext []byte, key Key) (string, error) {
	if err := checkKeyLength(key); err != nil {
		return "", err
	}
	size := chunkSize(key)

	var out strings.Builder
	for i := 0; i < len(plaintext); i += size {
		end := i + size
		if end > len(plaintext) {
			end = len(plaintext)
		}
		encChunk, err := encryptChunk(plaintext[i:end], key)
		if err != nil {
			return "", err
		}
		out.WriteString(encChunk)
		out.WriteByte(' ')
	}
	return out.String(), nil
}

// encryptChunk encrypts one plaintext chunk: append the marker byte, encode
// to a BigNat, raise it to the public exponent mod the modulus.
func encryptChunk(chunk []byte, key Key) (string, error) {
	withMarker := make([]byte, len(chunk)+1)
	copy(withMarker, chunk)
	withMarker[len(chunk)] = markerByte

	n, err := codec.Encode(withMarker)
	if err != nil {
		return "", err
	}
	c, err := bignat.PowMod(n, key.Exponent, key.Modulus)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Decrypt reverses Encrypt, given the matching key (normally the
// recipient's private key).
func Decrypt(ciphertext string, key Key) ([]byte, error) {
	if err := checkKeyLength(key); err != nil {
		return nil, err
	}

	var out []byte
	for _, token := range strings.Fields(ciphertext) {
		chunk, err := decryptChunk(token, key)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// decryptChunk decrypts one ciphertext token and strips the marker byte
// Encrypt appended.
func decryptChunk(token string, key Key) ([]byte, error) {
	c, err := bignat.FromString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	if bignat.Gte(c, key.Modulus) {
		return nil, ErrChunkTooLarge
	}

	m, err := bignat.PowMod(c, key.Exponent, key.Modulus)
	if err != nil {
		return nil, err
	}
	withMarker, err := codec.Decode(m)
	if err != nil {
		return nil, err
	}
	if len(withMarker) == 0 {
		return nil, fmt.Errorf("%w: decoded chunk missing marker byte", ErrInvalidCiphertext)
	}
	return withMarker[:len(withMarker)-1], nil
}
