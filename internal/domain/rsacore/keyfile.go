package rsacore

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"rsa_toolkit/internal/domain/bignat"
)

// String renders a Key as the two-field "modulus exponent" line the CLI
// persists to disk — no PEM or ASN.1 framing, since a Key here is nothing but a pair of decimal BigNats.
func (k Key) String() string {
	return k.Modulus.String() + " " + k.Exponent.String()
}

// ParseKey parses a "modulus exponent" line produced by Key.String.
func ParseKey(line string) (Key, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Key{}, fmt.Errorf("%w: expected 2 fields, got %d", ErrInvalidCiphertext, len(fields))
	}
	modulus, err := bignat.FromString(fields[0])
	if err != nil {
		return Key{}, fmt.Errorf("rsacore: invalid modulus in key line: %w", err)
	}
	exponent, err := bignat.FromString(fields[1])
	if err != nil {
		return Key{}, fmt.Errorf("rsacore: invalid exponent in key line: %w", err)
	}
	return Key{Modulus: modulus, Exponent: exponent}, nil
}

// SaveKeyToFile writes a Key's "modulus exponent" line to path.
func SaveKeyToFile(key Key, path string) error {
	if err := os.WriteFile(path, []byte(key.String()+"\n"), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	return nil
}

// ReadKeyFromFile reads the first non-empty line of path and parses it as a
// Key.
func ReadKeyFromFile(path string) (Key, error) {
	f, err := os.Open(path)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return ParseKey(line)
	}
	if err := scanner.Err(); err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	return Key{}, fmt.Errorf("%w: key file is empty", ErrFileIO)
}
