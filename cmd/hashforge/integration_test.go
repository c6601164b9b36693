package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes a fresh root command with the given arguments and
// returns the captured standard output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestPipelineGenerateHashDump drives the password and hash stages end
// to end: generate a sample, hash it, and dump the hash-file back.
func TestPipelineGenerateHashDump(t *testing.T) {
	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "passwords.txt")
	hashFile := filepath.Join(dir, "hashes.bin")

	if _, err := runCommand(t,
		"gen-passwords", "--num", "20", "--chars", "5", "--out-file", passwordFile,
	); err != nil {
		t.Fatalf("gen-passwords failed: %v", err)
	}

	data, err := os.ReadFile(passwordFile) //nolint:gosec // test-owned temp path
	if err != nil {
		t.Fatalf("failed to read password file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 passwords, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) != 5 {
			t.Errorf("password %d: expected length 5, got %d", i, len(line))
		}
	}

	if _, err := runCommand(t,
		"gen-hashes", "--in-file", passwordFile, "--out-file", hashFile, "--algorithm", "sha256",
	); err != nil {
		t.Fatalf("gen-hashes failed: %v", err)
	}

	out, err := runCommand(t, "dump-hashes", "--in-file", hashFile)
	if err != nil {
		t.Fatalf("dump-hashes failed: %v", err)
	}
	if !strings.Contains(out, "ALGORITHM: sha256") {
		t.Errorf("expected dump to name the algorithm, got %q", out)
	}
	if !strings.Contains(out, "PASSWORD LENGTH: 5") {
		t.Errorf("expected dump to report the password length, got %q", out)
	}
	// 20 digests of 32 bytes each, printed as 64 hex characters
	hexLines := 0
	for _, line := range strings.Split(out, "\n") {
		if len(line) == 64 {
			hexLines++
		}
	}
	if hexLines != 20 {
		t.Errorf("expected 20 digest lines, got %d", hexLines)
	}
}

// TestPipelineRainbowTableCrack drives the full toolkit: generate
// passwords, hash them, build a table from the same sample, and crack
// the hash-file against it. Every target is a chain start, so every
// plaintext must come back.
func TestPipelineRainbowTableCrack(t *testing.T) {
	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "passwords.txt")
	hashFile := filepath.Join(dir, "hashes.bin")
	tableFile := filepath.Join(dir, "table.bin")

	if _, err := runCommand(t,
		"gen-passwords", "--num", "10", "--chars", "4", "--out-file", passwordFile,
	); err != nil {
		t.Fatalf("gen-passwords failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-hashes", "--in-file", passwordFile, "--out-file", hashFile, "--algorithm", "md5",
	); err != nil {
		t.Fatalf("gen-hashes failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-rainbow-table",
		"--in-file", passwordFile, "--out-file", tableFile,
		"--algorithm", "md5", "--num-links", "50",
	); err != nil {
		t.Fatalf("gen-rainbow-table failed: %v", err)
	}

	dump, err := runCommand(t, "dump-rainbow-table", "--in-file", tableFile)
	if err != nil {
		t.Fatalf("dump-rainbow-table failed: %v", err)
	}
	if !strings.Contains(dump, "ALGORITHM: md5") {
		t.Errorf("expected table dump to name the algorithm, got %q", dump)
	}
	if !strings.Contains(dump, "NUM LINKS: 50") {
		t.Errorf("expected table dump to report the link count, got %q", dump)
	}

	out, err := runCommand(t,
		"crack",
		"--in-file", hashFile, "--rainbow-table", tableFile,
		"--threads", "2", "--no-pot",
	)
	if err != nil {
		t.Fatalf("crack failed: %v", err)
	}

	data, err := os.ReadFile(passwordFile) //nolint:gosec // test-owned temp path
	if err != nil {
		t.Fatalf("failed to read password file: %v", err)
	}
	passwords := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	recovered := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		digestHex, plaintext, ok := strings.Cut(line, "\t")
		if !ok {
			t.Fatalf("malformed result line %q", line)
		}
		if len(digestHex) != 32 {
			t.Errorf("expected 32 hex characters for an md5 digest, got %q", digestHex)
		}
		recovered[plaintext] = true
	}
	for _, p := range passwords {
		if !recovered[p] {
			t.Errorf("password %q was not recovered", p)
		}
	}
}

// TestPipelineCrackWithPot runs crack twice against a private pot
// directory: the second run must be served entirely from the pot.
func TestPipelineCrackWithPot(t *testing.T) {
	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "passwords.txt")
	hashFile := filepath.Join(dir, "hashes.bin")
	tableFile := filepath.Join(dir, "table.bin")
	potDir := filepath.Join(dir, "pot")

	if _, err := runCommand(t,
		"gen-passwords", "--num", "5", "--chars", "4", "--out-file", passwordFile,
	); err != nil {
		t.Fatalf("gen-passwords failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-hashes", "--in-file", passwordFile, "--out-file", hashFile, "--algorithm", "sha256",
	); err != nil {
		t.Fatalf("gen-hashes failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-rainbow-table",
		"--in-file", passwordFile, "--out-file", tableFile,
		"--algorithm", "sha256", "--num-links", "20",
	); err != nil {
		t.Fatalf("gen-rainbow-table failed: %v", err)
	}

	first, err := runCommand(t,
		"crack", "--in-file", hashFile, "--rainbow-table", tableFile, "--pot-dir", potDir,
	)
	if err != nil {
		t.Fatalf("first crack failed: %v", err)
	}

	second, err := runCommand(t,
		"crack", "--in-file", hashFile, "--rainbow-table", tableFile, "--pot-dir", potDir,
	)
	if err != nil {
		t.Fatalf("second crack failed: %v", err)
	}

	firstLines := strings.Split(strings.TrimRight(first, "\n"), "\n")
	secondLines := strings.Split(strings.TrimRight(second, "\n"), "\n")
	if len(firstLines) != 5 || len(secondLines) != 5 {
		t.Fatalf("expected 5 results per run, got %d and %d", len(firstLines), len(secondLines))
	}
	firstSet := make(map[string]bool, len(firstLines))
	for _, line := range firstLines {
		firstSet[line] = true
	}
	for _, line := range secondLines {
		if !firstSet[line] {
			t.Errorf("pot-served result %q missing from the first run", line)
		}
	}
}

// TestCrackMarkdownReport checks the markdown report surface of crack.
func TestCrackMarkdownReport(t *testing.T) {
	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "passwords.txt")
	hashFile := filepath.Join(dir, "hashes.bin")
	tableFile := filepath.Join(dir, "table.bin")
	reportFile := filepath.Join(dir, "report.md")

	if _, err := runCommand(t,
		"gen-passwords", "--num", "3", "--chars", "4", "--out-file", passwordFile,
	); err != nil {
		t.Fatalf("gen-passwords failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-hashes", "--in-file", passwordFile, "--out-file", hashFile, "--algorithm", "md5",
	); err != nil {
		t.Fatalf("gen-hashes failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-rainbow-table",
		"--in-file", passwordFile, "--out-file", tableFile,
		"--algorithm", "md5", "--num-links", "10",
	); err != nil {
		t.Fatalf("gen-rainbow-table failed: %v", err)
	}

	if _, err := runCommand(t,
		"crack",
		"--in-file", hashFile, "--rainbow-table", tableFile,
		"--markdown", "--out-file", reportFile, "--no-pot",
	); err != nil {
		t.Fatalf("crack failed: %v", err)
	}

	data, err := os.ReadFile(reportFile) //nolint:gosec // test-owned temp path
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	report := string(data)
	if !strings.Contains(report, "# Crack Session Report") {
		t.Errorf("expected report title, got %q", report)
	}
	if !strings.Contains(report, "md5") {
		t.Errorf("expected report to name the algorithm, got %q", report)
	}
}

// TestCrackAlgorithmMismatch confirms that a hash-file and table built
// with different algorithms are rejected up front.
func TestCrackAlgorithmMismatch(t *testing.T) {
	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "passwords.txt")
	hashFile := filepath.Join(dir, "hashes.bin")
	tableFile := filepath.Join(dir, "table.bin")

	if _, err := runCommand(t,
		"gen-passwords", "--num", "3", "--chars", "4", "--out-file", passwordFile,
	); err != nil {
		t.Fatalf("gen-passwords failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-hashes", "--in-file", passwordFile, "--out-file", hashFile, "--algorithm", "sha256",
	); err != nil {
		t.Fatalf("gen-hashes failed: %v", err)
	}
	if _, err := runCommand(t,
		"gen-rainbow-table",
		"--in-file", passwordFile, "--out-file", tableFile,
		"--algorithm", "md5", "--num-links", "10",
	); err != nil {
		t.Fatalf("gen-rainbow-table failed: %v", err)
	}

	if _, err := runCommand(t,
		"crack", "--in-file", hashFile, "--rainbow-table", tableFile, "--no-pot",
	); err == nil {
		t.Fatal("expected an algorithm mismatch error")
	}
}

// TestGenRainbowTableRejectsScrypt confirms the determinism guard on
// table generation.
func TestGenRainbowTableRejectsScrypt(t *testing.T) {
	dir := t.TempDir()
	passwordFile := filepath.Join(dir, "passwords.txt")

	if _, err := runCommand(t,
		"gen-passwords", "--num", "2", "--chars", "4", "--out-file", passwordFile,
	); err != nil {
		t.Fatalf("gen-passwords failed: %v", err)
	}

	if _, err := runCommand(t,
		"gen-rainbow-table",
		"--in-file", passwordFile, "--out-file", filepath.Join(dir, "table.bin"),
		"--algorithm", "scrypt", "--num-links", "5",
	); err == nil {
		t.Fatal("expected scrypt to be rejected for table generation")
	}
}

// TestMissingRequiredFlags checks the flag guards of the file-consuming
// commands.
func TestMissingRequiredFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "gen-hashes without in-file", args: []string{"gen-hashes", "--out-file", "x.bin", "--algorithm", "md5"}},
		{name: "gen-hashes without out-file", args: []string{"gen-hashes", "--in-file", "x.txt", "--algorithm", "md5"}},
		{name: "dump-hashes without in-file", args: []string{"dump-hashes"}},
		{name: "gen-rainbow-table without in-file", args: []string{"gen-rainbow-table", "--out-file", "x.bin", "--algorithm", "md5"}},
		{name: "dump-rainbow-table without in-file", args: []string{"dump-rainbow-table"}},
		{name: "crack without rainbow-table", args: []string{"crack", "--in-file", "x.bin"}},
		{name: "crack without in-file", args: []string{"crack", "--rainbow-table", "x.bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCommand(t, tt.args...); err == nil {
				t.Error("expected an error for missing required flag")
			}
		})
	}
}
