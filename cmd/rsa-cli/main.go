// Package main is the entry point for the rsa-cli application. It
// initializes the root command and registers the keygen/encrypt/decrypt/
// selftest sub-commands built on the rsacore library, then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_toolkit/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "RSA key generation and file encryption tool",
		Long: `rsa-cli is a command-line tool built on a from-scratch RSA implementation.
It generates key pairs, and encrypts/decrypts files using them, entirely on
top of an arbitrary-precision decimal integer type — no crypto/rsa, no
math/big.`,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
