// Package rsacore implements RSA key generation, chunked text encryption
// and streaming file encryption entirely on top of bignat, primegen,
// numbertheory and codec — no crypto/rsa, no math/big. It is a direct port
// of the original RSA/Key/KeyPair classes' behavior: the chunking scheme,
// marker byte, wire format and file buffer sizes all match the original.
package rsacore

import (
	"errors"
	"fmt"

	"rsa_toolkit/internal/domain/bignat"
)

// Sentinel errors. Each corresponds to one of the numbered "Error RSA0N"
// conditions the original library threw as bare C strings.
var (
	// ErrKeyTooShort matches the original's "Error RSA01: Insufficient key
	// length" — the modulus has fewer than minModulusDigits digits.
	ErrKeyTooShort = errors.New("rsacore: key modulus too short to be usable")
	// ErrKeyTooWeak is reported by GenerateKeyPair if it is asked for a
	// digit count too small to produce a usable modulus.
	ErrKeyTooWeak = errors.New("rsacore: requested key size is too weak")
	// ErrChunkTooLarge matches "Error RSA02: Chunk too large" — a
	// ciphertext chunk's numeric value is not smaller than the modulus, so
	// it could not have been produced by Encrypt with this key.
	ErrChunkTooLarge = errors.New("rsacore: ciphertext chunk is not smaller than the modulus")
	// ErrInvalidCiphertext is returned when a ciphertext chunk token isn't
	// a valid decimal number.
	ErrInvalidCiphertext = errors.New("rsacore: ciphertext is not a valid wire-format chunk")
	// ErrFileIO wraps I/O failures during streaming encrypt/decrypt,
	// matching the original's "Error RSA03-RSA09" file-handling exceptions.
	ErrFileIO = errors.New("rsacore: file operation failed")
)

// minModulusDigits is the original checkKeyLength's minimum modulus length.
const minModulusDigits = 7

// markerByte is appended to every plaintext chunk before encoding, so it
// forms the most significant digit group ("097"). Its tens digit (9) is
// nonzero, so that group always trims to exactly two digits, which pins the
// chunk's encoded digit count and lets codec.Decode recover the exact byte
// length with no separate length field. 'a' matches the original library's marker.
const markerByte = byte('a')

// Key is one half of an RSA keypair: a modulus and an exponent. The same
// type represents both the public key (exponent e) and the private key
// (exponent d) — the operations are identical, only the exponent differs.
type Key struct {
	Modulus  bignat.BigNat
	Exponent bignat.BigNat
}

// KeyPair bundles the public and private halves generated together.
type KeyPair struct {
	Public  Key
	Private Key
}

// checkKeyLength guards every entry point the original library guarded,
// refusing to operate on a modulus too short to safely chunk.
func checkKeyLength(key Key) error {
	if key.Modulus.Used() < minModulusDigits {
		return fmt.Errorf("%w: modulus has %d digits, need at least %d", ErrKeyTooShort, key.Modulus.Used(), minModulusDigits)
	}
	return nil
}

// chunkSize returns the maximum number of plaintext bytes safely packed
// (with its trailing marker byte) into a value smaller than the modulus:
// ((modulus digit count - 1) / 3) - 1, exactly as the original computed it.
func chunkSize(key Key) int {
	return (key.Modulus.Used()-1)/3 - 1
}
