package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashforge/hashforge/internal/config"
	"github.com/hashforge/hashforge/internal/password"
)

// NewGenPasswordsCmd creates the gen-passwords command.
func NewGenPasswordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-passwords",
		Short: "Generate random fixed-length passwords",
		Long: `Generate random passwords drawn from printable ASCII (32-126).

All passwords in one run share the same length, which makes the output
directly usable as input for gen-hashes and gen-rainbow-table.

Examples:
  # Print one 4-character password
  hashforge gen-passwords

  # Write 10000 8-character passwords using 4 workers
  hashforge gen-passwords --num 10000 --chars 8 --threads 4 --out-file passwords.txt`,
		Args: cobra.NoArgs,
		RunE: runGenPasswordsCmd,
	}

	cmd.Flags().IntP("chars", "c", config.DefaultChars, "Password length in characters")
	cmd.Flags().IntP("num", "n", config.DefaultCount, "Number of passwords to generate")
	cmd.Flags().IntP("threads", "t", config.DefaultThreads, "Number of worker threads")
	cmd.Flags().StringP("out-file", "o", "", "Output file path (default: standard output)")

	return cmd
}

// runGenPasswordsCmd executes the gen-passwords command.
func runGenPasswordsCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.New()

	var err error
	if cfg.Chars, err = cmd.Flags().GetInt("chars"); err != nil {
		return err
	}
	if cfg.Count, err = cmd.Flags().GetInt("num"); err != nil {
		return err
	}
	if cfg.Threads, err = cmd.Flags().GetInt("threads"); err != nil {
		return err
	}
	if cfg.OutFile, err = cmd.Flags().GetString("out-file"); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogging(cmd)

	ctx, cancel := signalContext()
	defer cancel()

	passwords, err := password.Generate(ctx, cfg.Count, cfg.Chars, cfg.Threads)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, cfg.OutFile)
	if err != nil {
		return err
	}

	if err := password.Write(out, passwords); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	logger.Info("generated passwords",
		"count", cfg.Count,
		"chars", cfg.Chars,
		"out_file", cfg.OutFile,
	)
	return nil
}
