package digest

import (
	"context"
	"crypto/md5" //nolint:gosec // MD5 is a supported cracking target, not a security primitive
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"

	"github.com/hashforge/hashforge/internal/model"
	"github.com/hashforge/hashforge/internal/worker"
)

// Scrypt parameters. These are fixed so that the textual encoding always
// occupies exactly model.Scrypt.DigestSize() (91) bytes.
const (
	scryptLogN    = 14
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 32
	scryptSaltLen = 16
)

// Compute returns the digest of password under the given algorithm.
//
// MD5, SHA-256, and SHA3-512 are deterministic. Scrypt draws a fresh
// random salt on every call and returns its textual encoding
// ("$scrypt$ln=14,r=8,p=1$<b64 salt>$<b64 key>"), so two calls with the
// same password produce different bytes.
func Compute(password string, algo model.Algorithm) ([]byte, error) {
	switch algo {
	case model.MD5:
		sum := md5.Sum([]byte(password)) //nolint:gosec // see import note
		return sum[:], nil
	case model.SHA256:
		sum := sha256.Sum256([]byte(password))
		return sum[:], nil
	case model.SHA3512:
		sum := sha3.Sum512([]byte(password))
		return sum[:], nil
	case model.Scrypt:
		return computeScrypt(password)
	default:
		return nil, fmt.Errorf("%w: %d", model.ErrUnknownAlgorithm, int(algo))
	}
}

// ComputeBatch hashes every password with at most threads concurrent
// workers, returning digests in input order. Any single failure aborts
// the whole batch.
func ComputeBatch(ctx context.Context, passwords []string, algo model.Algorithm, threads int) ([][]byte, error) {
	return worker.Map(ctx, len(passwords), threads, func(_ context.Context, i int) ([]byte, error) {
		return Compute(passwords[i], algo)
	})
}

// computeScrypt hashes password with a random salt and encodes the result
// in the self-describing textual form.
func computeScrypt(password string) ([]byte, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate scrypt salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, 1<<scryptLogN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt computation failed: %w", err)
	}

	encoded := fmt.Sprintf("$scrypt$ln=%d,r=%d,p=%d$%s$%s",
		scryptLogN, scryptR, scryptP,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	)
	return []byte(encoded), nil
}
