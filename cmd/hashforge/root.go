// Package main provides the entry point for the hashforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hashforge.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashforge",
		Short: "Password hashing and rainbow table cracking toolkit",
		Long: `hashforge generates fixed-length password samples, hashes them with
MD5, SHA-256, SHA3-512, or scrypt, builds rainbow tables from those
samples, and cracks hash files against the tables.

Rainbow table generation and cracking require a deterministic digest
function, so scrypt (which salts every hash randomly) is accepted by
gen-hashes but rejected by gen-rainbow-table and crack.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenPasswordsCmd())
	cmd.AddCommand(NewGenHashesCmd())
	cmd.AddCommand(NewDumpHashesCmd())
	cmd.AddCommand(NewGenRainbowTableCmd())
	cmd.AddCommand(NewDumpRainbowTableCmd())
	cmd.AddCommand(NewCrackCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
