package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashforge/hashforge/internal/config"
	"github.com/hashforge/hashforge/internal/model"
	"github.com/hashforge/hashforge/internal/password"
	"github.com/hashforge/hashforge/internal/rainbow"
)

// NewGenRainbowTableCmd creates the gen-rainbow-table command.
func NewGenRainbowTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-rainbow-table",
		Short: "Build a rainbow table from a password sample",
		Long: `Build a rainbow table by running digest-reduce chains from every
password in the input file and write it in the binary table format.

The algorithm must be deterministic: md5, sha256, or sha3-512. Scrypt
salts every hash randomly, so a chain built with it could never be
replayed during cracking.

Reduction parameters (--num-links, --charset-size, --ascii-offset) are
stored in the table header; crack reads them back from the file, so
the same table always reduces the same way.

Examples:
  # Default parameters (1000 links, printable ASCII)
  hashforge gen-rainbow-table --in-file passwords.txt --out-file table.bin --algorithm md5

  # Custom reduction window via a config-file profile
  hashforge gen-rainbow-table --in-file passwords.txt --out-file table.bin --algorithm sha256 --profile fast`,
		Args: cobra.NoArgs,
		RunE: runGenRainbowTableCmd,
	}

	cmd.Flags().StringP("in-file", "i", "", "Input password file (required)")
	cmd.Flags().StringP("out-file", "o", "", "Output table path (required)")
	cmd.Flags().IntP("threads", "t", config.DefaultThreads, "Number of worker threads")
	cmd.Flags().StringP("algorithm", "a", "", "Hash algorithm: md5, sha256, or sha3-512 (required)")
	cmd.Flags().Uint64P("num-links", "l", config.DefaultNumLinks, "Digest-reduce cycles per chain")
	cmd.Flags().Uint64("charset-size", config.DefaultCharsetSize, "Size of the reduction character set")
	cmd.Flags().Uint64("ascii-offset", config.DefaultASCIIOffset, "First code point of the reduction character set")
	cmd.Flags().String("config", "", "Configuration file path (default: search .hashforge in cwd and home)")
	cmd.Flags().String("profile", "", "Named parameter profile from the configuration file")

	return cmd
}

// runGenRainbowTableCmd executes the gen-rainbow-table command.
func runGenRainbowTableCmd(cmd *cobra.Command, _ []string) error {
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
	if cfg.NumLinks, err = cmd.Flags().GetUint64("num-links"); err != nil {
		return err
	}
	if cfg.CharsetSize, err = cmd.Flags().GetUint64("charset-size"); err != nil {
		return err
	}
	if cfg.ASCIIOffset, err = cmd.Flags().GetUint64("ascii-offset"); err != nil {
		return err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return err
	}
	if cfg.Profile, err = cmd.Flags().GetString("profile"); err != nil {
		return err
	}

	if err := applyConfigFile(cmd, cfg); err != nil {
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

	params := rainbow.Params{
		PasswordLength: len(passwords[0]),
		CharsetSize:    cfg.CharsetSize,
		ASCIIOffset:    cfg.ASCIIOffset,
	}
	chains, err := rainbow.BuildChains(ctx, passwords, algo, cfg.NumLinks, params, cfg.Threads)
	if err != nil {
		return err
	}

	table := &model.RainbowTable{
		Algorithm:      algo,
		PasswordLength: params.PasswordLength,
		CharsetSize:    cfg.CharsetSize,
		NumLinks:       cfg.NumLinks,
		ASCIIOffset:    cfg.ASCIIOffset,
		Chains:         chains,
	}
	if err := rainbow.WriteTableFile(cfg.OutFile, table); err != nil {
		return err
	}

	logger.Info("generated rainbow table",
		"chains", len(chains),
		"num_links", cfg.NumLinks,
		"algorithm", algo.String(),
		"out_file", cfg.OutFile,
	)
	return nil
}
