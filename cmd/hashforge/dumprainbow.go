package main

import (
	"github.com/spf13/cobra"

	"github.com/hashforge/hashforge/internal/config"
	"github.com/hashforge/hashforge/internal/rainbow"
)

// NewDumpRainbowTableCmd creates the dump-rainbow-table command.
func NewDumpRainbowTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-rainbow-table",
		Short: "Print a rainbow table in human-readable form",
		Long: `Parse a binary rainbow table and print its header fields followed by
one start/end plaintext pair per chain.

Example:
  hashforge dump-rainbow-table --in-file table.bin`,
		Args: cobra.NoArgs,
		RunE: runDumpRainbowTableCmd,
	}

	cmd.Flags().StringP("in-file", "i", "", "Input rainbow table path (required)")

	return cmd
}

// runDumpRainbowTableCmd executes the dump-rainbow-table command.
func runDumpRainbowTableCmd(cmd *cobra.Command, _ []string) error {
	inFile, err := cmd.Flags().GetString("in-file")
	if err != nil {
		return err
	}
	if inFile == "" {
		return config.ErrMissingInFile
	}

	setupLogging(cmd)

	return rainbow.DumpTable(cmd.OutOrStdout(), inFile)
}
