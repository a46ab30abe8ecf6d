package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rsa_toolkit/internal/domain/rsacore"
	"rsa_toolkit/internal/infrastructure/rng"
	"rsa_toolkit/internal/pkg/logger"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	logger logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{logger: loggerInstance}, nil
}

// KeygenCmd generates an RSA key pair and persists both halves as
// "modulus exponent" text files under the requested directory.
func (h *RSACommandHandler) KeygenCmd(cmd *cobra.Command, _ []string) {
	digits, err := cmd.Flags().GetInt("digits")
	if err != nil {
		h.logger.Error("invalid digits flag: ", err)
		return
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		h.logger.Error("invalid rounds flag: ", err)
		return
	}
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		h.logger.Error("invalid out-dir flag: ", err)
		return
	}

	keyPair, err := rsacore.GenerateKeyPair(digits, rounds, rng.NewSplitMix64(0))
	if err != nil {
		h.logger.Error("key generation failed: ", err)
		return
	}

	uniqueID := uuid.New()
	publicKeyPath := filepath.Join(outDir, fmt.Sprintf("%s-public-key.txt", uniqueID))
	privateKeyPath := filepath.Join(outDir, fmt.Sprintf("%s-private-key.txt", uniqueID))

	if err := rsacore.SaveKeyToFile(keyPair.Public, publicKeyPath); err != nil {
		h.logger.Error("failed to save public key: ", err)
		return
	}
	if err := rsacore.SaveKeyToFile(keyPair.Private, privateKeyPath); err != nil {
		h.logger.Error("failed to save private key: ", err)
		return
	}

	h.logger.Info("Generated key pair ", uniqueID.String(), " public=", publicKeyPath, " private=", privateKeyPath)
}

// EncryptCmd RSA-encrypts a file against a public (or private) key file.
func (h *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	h.runCryptOp(cmd, rsacore.EncryptFile, "encrypted")
}

// DecryptCmd RSA-decrypts a file previously produced by EncryptCmd.
func (h *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	h.runCryptOp(cmd, rsacore.DecryptFile, "decrypted")
}

// runCryptOp reads the shared --in/--out/--key flags and dispatches to
// either rsacore.EncryptFile or rsacore.DecryptFile.
func (h *RSACommandHandler) runCryptOp(cmd *cobra.Command, op func(string, string, rsacore.Key) error, verb string) {
	inFile, err := cmd.Flags().GetString("in")
	if err != nil {
		h.logger.Error("invalid in flag: ", err)
		return
	}
	outFile, err := cmd.Flags().GetString("out")
	if err != nil {
		h.logger.Error("invalid out flag: ", err)
		return
	}
	keyFile, err := cmd.Flags().GetString("key")
	if err != nil {
		h.logger.Error("invalid key flag: ", err)
		return
	}

	key, err := rsacore.ReadKeyFromFile(keyFile)
	if err != nil {
		h.logger.Error("failed to read key file: ", err)
		return
	}

	if err := op(inFile, outFile, key); err != nil {
		h.logger.Error(verb, " failed: ", err)
		return
	}

	h.logger.Info("Wrote ", verb, " output to ", outFile)
}

// SelftestCmd runs the decrypt(encrypt(...)) round trip against a freshly
// generated key pair and a fixed greeting string, printing pass/fail. This
// is a convenience wrapper over the library's own test coverage, not a
// substitute for it.
func (h *RSACommandHandler) SelftestCmd(cmd *cobra.Command, _ []string) {
	digits, err := cmd.Flags().GetInt("digits")
	if err != nil {
		h.logger.Error("invalid digits flag: ", err)
		return
	}

	keyPair, err := rsacore.GenerateKeyPair(digits, 10, rng.NewSplitMix64(0))
	if err != nil {
		h.logger.Error("selftest FAILED: key generation: ", err)
		os.Exit(1)
	}

	const greeting = "Hello, world!\n"
	cipherText, err := rsacore.Encrypt([]byte(greeting), keyPair.Public)
	if err != nil {
		h.logger.Error("selftest FAILED: encrypt: ", err)
		os.Exit(1)
	}

	plainText, err := rsacore.Decrypt(cipherText, keyPair.Private)
	if err != nil {
		h.logger.Error("selftest FAILED: decrypt: ", err)
		os.Exit(1)
	}

	if string(plainText) != greeting {
		h.logger.Error("selftest FAILED: round trip mismatch")
		os.Exit(1)
	}

	h.logger.Info("selftest PASSED")
}

// InitRSACommands registers keygen/encrypt/decrypt/selftest with rootCmd.
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair",
		Run:   handler.KeygenCmd,
	}
	keygenCmd.Flags().IntP("digits", "", 40, "Decimal digit count of each generated prime")
	keygenCmd.Flags().IntP("rounds", "", 10, "Miller-Rabin witness rounds")
	keygenCmd.Flags().StringP("out-dir", "", ".", "Directory to store the generated key files")
	rootCmd.AddCommand(keygenCmd)

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file using RSA",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("in", "", "", "Path to plaintext input file")
	encryptCmd.Flags().StringP("out", "", "", "Path to ciphertext output file")
	encryptCmd.Flags().StringP("key", "", "", "Path to the key file (public key for encrypt)")
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file using RSA",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("in", "", "", "Path to ciphertext input file")
	decryptCmd.Flags().StringP("out", "", "", "Path to plaintext output file")
	decryptCmd.Flags().StringP("key", "", "", "Path to the key file (private key for decrypt)")
	rootCmd.AddCommand(decryptCmd)

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run an encrypt/decrypt round trip against a freshly generated key",
		Run:   handler.SelftestCmd,
	}
	selftestCmd.Flags().IntP("digits", "", 40, "Decimal digit count of each generated prime")
	rootCmd.AddCommand(selftestCmd)

	return nil
}
