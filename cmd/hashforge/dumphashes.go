package main

import (
	"github.com/spf13/cobra"

	"github.com/hashforge/hashforge/internal/config"
	"github.com/hashforge/hashforge/internal/digest"
)

// NewDumpHashesCmd creates the dump-hashes command.
func NewDumpHashesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-hashes",
		Short: "Print a hash-file in human-readable form",
		Long: `Parse a binary hash-file and print its header fields followed by one
digest per line. Fixed-size digests are printed as lowercase hex;
scrypt entries are printed in their textual form.

Example:
  hashforge dump-hashes --in-file hashes.bin`,
		Args: cobra.NoArgs,
		RunE: runDumpHashesCmd,
	}

	cmd.Flags().StringP("in-file", "i", "", "Input hash-file path (required)")

	return cmd
}

// runDumpHashesCmd executes the dump-hashes command.
func runDumpHashesCmd(cmd *cobra.Command, _ []string) error {
	inFile, err := cmd.Flags().GetString("in-file")
	if err != nil {
		return err
	}
	if inFile == "" {
		return config.ErrMissingInFile
	}

	setupLogging(cmd)

	return digest.DumpHashFile(cmd.OutOrStdout(), inFile)
}
