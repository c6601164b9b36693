package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashforge/hashforge/internal/config"
	"github.com/hashforge/hashforge/internal/digest"
	"github.com/hashforge/hashforge/internal/model"
	"github.com/hashforge/hashforge/internal/password"
)

// NewGenHashesCmd creates the gen-hashes command.
func NewGenHashesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-hashes",
		Short: "Hash a password file into a plain hash-file",
		Long: `Hash every password in the input file and write the digests to a
binary hash-file. All four algorithms are accepted here, including
scrypt: the plain hash-file does not require determinism.

Examples:
  # MD5-hash a password sample
  hashforge gen-hashes --in-file passwords.txt --out-file hashes.bin --algorithm md5

  # Scrypt with 8 workers
  hashforge gen-hashes --in-file passwords.txt --out-file hashes.bin --algorithm scrypt --threads 8`,
		Args: cobra.NoArgs,
		RunE: runGenHashesCmd,
	}

	cmd.Flags().StringP("in-file", "i", "", "Input password file (required)")
	cmd.Flags().StringP("out-file", "o", "", "Output hash-file path (required)")
	cmd.Flags().IntP("threads", "t", config.DefaultThreads, "Number of worker threads")
	cmd.Flags().StringP("algorithm", "a", "", "Hash algorithm: md5, sha256, sha3-512, or scrypt (required)")

	return cmd
}

// runGenHashesCmd executes the gen-hashes command.
func runGenHashesCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.New()

	var err error
	if cfg.InFile, err = cmd.Flags().GetString("in-file"); err != nil {
		return err
	}
	if cfg.OutFile, err = cmd.Flags().GetString("out-file"); err != nil {
		return err
	}
	if cfg.Threads, err = cmd.Flags().GetInt("threads"); err != nil {
		return err
	}
	if cfg.Algorithm, err = cmd.Flags().GetString("algorithm"); err != nil {
		return err
	}

	if cfg.InFile == "" {
		return config.ErrMissingInFile
	}
	if cfg.OutFile == "" {
		return config.ErrMissingOutFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	algo, err := model.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	logger := setupLogging(cmd)

	ctx, cancel := signalContext()
	defer cancel()

	passwords, err := password.ReadFile(cfg.InFile)
	if err != nil {
		return err
	}

	digests, err := digest.ComputeBatch(ctx, passwords, algo, cfg.Threads)
	if err != nil {
		return err
	}

	batch := &model.HashBatch{
		Algorithm:      algo,
		PasswordLength: len(passwords[0]),
		Digests:        digests,
	}
	if err := digest.WriteHashFileTo(cfg.OutFile, batch); err != nil {
		return err
	}

	logger.Info("generated hashes",
		"count", len(digests),
		"algorithm", algo.String(),
		"out_file", cfg.OutFile,
	)
	return nil
}
