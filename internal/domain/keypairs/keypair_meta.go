// Package keypairs holds the domain entities and contracts for storing and
// serving generated RSA key pairs, the network-reachable counterpart to the
// file-oriented rsacore/rsa-cli workflow.
package keypairs

import (
	"fmt"
	"time"
)

// KeyPairMeta is the domain entity for a persisted RSA key pair. The
// modulus and both exponents are kept as plain decimal-digit strings —
// exactly rsacore's own BigNat.String() form — since a stored key pair here
// is nothing but three decimal numbers, never a PEM/ASN.1 blob.
type KeyPairMeta struct {
	ID              string
	Modulus         string
	PublicExponent  string
	PrivateExponent string
	DigitCount      int
	DateTimeCreated time.Time
}

// KeyPairQuery filters and paginates KeyPairRepository.List results,
// mirroring the teacher's own metadata-query DTO shape.
type KeyPairQuery struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// NewKeyPairQuery returns a KeyPairQuery with the teacher's usual
// zero-value-safe defaults.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{SortBy: "date_time_created", SortOrder: "desc"}
}

// Validate checks that query parameters, if set, are within sane bounds.
func (q *KeyPairQuery) Validate() error {
	if q.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if q.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if q.SortOrder != "" && q.SortOrder != "asc" && q.SortOrder != "desc" {
		return fmt.Errorf("sortOrder must be 'asc' or 'desc'")
	}
	return nil
}
