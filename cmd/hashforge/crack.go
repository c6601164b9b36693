package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hashforge/hashforge/internal/config"
	"github.com/hashforge/hashforge/internal/database"
	"github.com/hashforge/hashforge/internal/digest"
	"github.com/hashforge/hashforge/internal/model"
	"github.com/hashforge/hashforge/internal/rainbow"
	"github.com/hashforge/hashforge/internal/report"
)

// NewCrackCmd creates the crack command.
func NewCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Crack a hash-file against a rainbow table",
		Long: `Look up every digest in the hash-file through the rainbow table's
chains and print the recovered plaintexts as "hex digest<TAB>plaintext"
lines. Every candidate is verified by replaying its chain forward, so
reduction collisions never produce wrong answers.

The hash-file and the table must use the same deterministic algorithm.

Previously cracked digests are served from the pot database without
touching the table, and new recoveries are recorded there. Use --no-pot
for a fully stateless run.

Examples:
  # Crack against a table, results to stdout
  hashforge crack --in-file hashes.bin --rainbow-table table.bin

  # Markdown session report to a file, no pot database
  hashforge crack --in-file hashes.bin --rainbow-table table.bin --markdown --out-file report.md --no-pot`,
		Args: cobra.NoArgs,
		RunE: runCrackCmd,
	}

	cmd.Flags().StringP("in-file", "i", "", "Input hash-file path (required)")
	cmd.Flags().StringP("rainbow-table", "r", "", "Rainbow table path (required)")
	cmd.Flags().StringP("out-file", "o", "", "Output file path (default: standard output)")
	cmd.Flags().IntP("threads", "t", config.DefaultThreads, "Number of worker threads")
	cmd.Flags().BoolP("markdown", "m", false, "Write a markdown session report instead of TSV lines")
	cmd.Flags().String("pot-dir", "", "Pot database directory (default: XDG data directory)")
	cmd.Flags().Bool("no-pot", false, "Disable the pot database")

	return cmd
}

// runCrackCmd executes the crack command.
func runCrackCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.New()

	var err error
	if cfg.InFile, err = cmd.Flags().GetString("in-file"); err != nil {
		return err
	}
	if cfg.RainbowFile, err = cmd.Flags().GetString("rainbow-table"); err != nil {
		return err
	}
	if cfg.OutFile, err = cmd.Flags().GetString("out-file"); err != nil {
		return err
	}
	if cfg.Threads, err = cmd.Flags().GetInt("threads"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.PotDir, err = cmd.Flags().GetString("pot-dir"); err != nil {
		return err
	}
	if cfg.NoPot, err = cmd.Flags().GetBool("no-pot"); err != nil {
		return err
	}

	if cfg.InFile == "" {
		return config.ErrMissingInFile
	}
	if cfg.RainbowFile == "" {
		return config.ErrMissingRainbowFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogging(cmd)

	ctx, cancel := signalContext()
	defer cancel()

	table, err := rainbow.ReadTableFile(cfg.RainbowFile)
	if err != nil {
		return err
	}
	batch, err := digest.ReadHashFileFrom(cfg.InFile)
	if err != nil {
		return err
	}

	if batch.Algorithm != table.Algorithm {
		return fmt.Errorf("%w: hash-file uses %s, table uses %s",
			rainbow.ErrAlgorithmMismatch, batch.Algorithm, table.Algorithm)
	}

	started := time.Now()
	session := &report.Session{
		Algorithm:      table.Algorithm,
		PasswordLength: table.PasswordLength,
		NumLinks:       table.NumLinks,
		CharsetSize:    table.CharsetSize,
		ASCIIOffset:    table.ASCIIOffset,
		ChainCount:     len(table.Chains),
		Targets:        len(batch.Digests),
	}

	targets := batch.Digests
	if !cfg.NoPot {
		pot, err := openPot(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := pot.Close(); err != nil {
				logger.Warn("failed to close pot database", "error", err)
			}
		}()

		found, remaining, err := pot.Lookup(ctx, table.Algorithm, targets)
		if err != nil {
			return err
		}
		session.FromPot = len(found)
		session.Results = found
		targets = remaining
		if len(found) > 0 {
			logger.Debug("pot database hits", "count", len(found), "pot", pot.Path())
		}

		if len(targets) > 0 {
			results, err := crackRemaining(ctx, table, batch, targets, cfg.Threads, session.FromPot)
			if err != nil {
				return err
			}
			if err := pot.Record(ctx, table.Algorithm, results); err != nil {
				return err
			}
			session.Results = append(session.Results, results...)
		}
	} else {
		results, err := crackRemaining(ctx, table, batch, targets, cfg.Threads, 0)
		if err != nil {
			return err
		}
		session.Results = results
	}

	if len(session.Results) == 0 {
		return rainbow.ErrNoPasswordsFound
	}
	session.Elapsed = time.Since(started)

	out, closeOut, err := openOutput(cmd, cfg.OutFile)
	if err != nil {
		return err
	}
	var writer report.Writer = report.NewTSVWriter(out)
	if cfg.MarkdownReport {
		writer = report.NewMarkdownWriter(out)
	}
	if _, err := writer.Write(session); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	logger.Info("crack finished",
		"results", len(session.Results),
		"targets", session.Targets,
		"from_pot", session.FromPot,
		"elapsed", session.Elapsed.Round(time.Millisecond).String(),
	)
	return nil
}

// crackRemaining runs the table search over the digests the pot did not
// cover. A table miss is only an error when nothing was recovered from
// the pot either.
func crackRemaining(ctx context.Context, table *model.RainbowTable, batch *model.HashBatch, targets [][]byte, threads, fromPot int) ([]model.CrackResult, error) {
	sub := &model.HashBatch{
		Algorithm:      batch.Algorithm,
		PasswordLength: batch.PasswordLength,
		Digests:        targets,
	}
	results, err := rainbow.Crack(ctx, table, sub, threads)
	if err != nil {
		if errors.Is(err, rainbow.ErrNoPasswordsFound) && fromPot > 0 {
			return nil, nil
		}
		return nil, err
	}
	return results, nil
}

// openPot opens the pot database in the configured directory, creating
// it on first use.
func openPot(cfg *config.Config) (*database.PotDB, error) {
	dir := cfg.PotDir
	if dir == "" {
		dir = config.XDGDataDir()
	}
	return database.Open(dir, database.DefaultOptions())
}
