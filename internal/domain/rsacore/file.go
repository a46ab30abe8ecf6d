package rsacore

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// encryptBufferSize and decryptBufferSize match the original library's
// file-mode buffer sizes exactly.
const (
	encryptBufferSize = 4096
	decryptBufferSize = 8192
)

// EncryptStream reads src in encryptBufferSize chunks, RSA-encrypts each
// chunk independently (each producing its own run of space-delimited
// tokens), and writes the concatenated ciphertext to dst.
func EncryptStream(src io.Reader, dst io.Writer, key Key) error {
	if err := checkKeyLength(key); err != nil {
		return err
	}
	buf := make([]byte, encryptBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			cipherText, encErr := Encrypt(buf[:n], key)
			if encErr != nil {
				return encErr
			}
			if _, werr := dst.Write([]byte(cipherText)); werr != nil {
				return fmt.Errorf("%w: %v", ErrFileIO, werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFileIO, err)
		}
	}
}

// DecryptStream reverses EncryptStream. It reads src in decryptBufferSize
// chunks, but since ciphertext tokens are variable-length and
// space-delimited, a raw read can land mid-token; any trailing partial
// token is carried over and prefixed onto the next read, mirroring the
// original library's find_last_of(' ')/seekg bookkeeping.
func DecryptStream(src io.Reader, dst io.Writer, key Key) error {
	if err := checkKeyLength(key); err != nil {
		return err
	}

	buf := make([]byte, decryptBufferSize)
	var leftover string
	for {
		n, err := src.Read(buf)
		chunk := leftover + string(buf[:n])
		leftover = ""

		if idx := strings.LastIndexByte(chunk, ' '); idx >= 0 {
			ready := chunk[:idx+1]
			leftover = chunk[idx+1:]
			if plain, derr := Decrypt(ready, key); derr != nil {
				return derr
			} else if _, werr := dst.Write(plain); werr != nil {
				return fmt.Errorf("%w: %v", ErrFileIO, werr)
			}
		} else {
			leftover = chunk
		}

		if err == io.EOF {
			if strings.TrimSpace(leftover) != "" {
				plain, derr := Decrypt(leftover, key)
				if derr != nil {
					return derr
				}
				if _, werr := dst.Write(plain); werr != nil {
					return fmt.Errorf("%w: %v", ErrFileIO, werr)
				}
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFileIO, err)
		}
	}
}

// EncryptFile opens srcPath and dstPath and drives EncryptStream between
// them, the path-based convenience form CLI callers reach for instead of
// wiring up io.Reader/io.Writer themselves.
func EncryptFile(srcPath, dstPath string, key Key) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer dst.Close()

	return EncryptStream(src, dst, key)
}

// DecryptFile opens srcPath and dstPath and drives DecryptStream between
// them.
func DecryptFile(srcPath, dstPath string, key Key) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer dst.Close()

	return DecryptStream(src, dst, key)
}
