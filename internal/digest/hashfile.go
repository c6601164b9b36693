package digest

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashforge/hashforge/internal/model"
)

// hashFileVersion is the only supported plain hash-file format version.
const hashFileVersion = 1

// Hash-file decode errors.
var (
	// ErrInvalidHashFile is returned when the hash-file header is missing,
	// has an unsupported version, or the digest data is not a whole number
	// of digests.
	ErrInvalidHashFile = errors.New("invalid hash file")

	// ErrPasswordTooLong is returned when a password length does not fit
	// the single header byte.
	ErrPasswordTooLong = errors.New("password length exceeds 255")
)

// WriteHashFile encodes batch to w in the plain hash-file layout.
// Every digest must have the algorithm's serialized size.
func WriteHashFile(w io.Writer, batch *model.HashBatch) error {
	if batch.PasswordLength > 255 {
		return fmt.Errorf("%w: %d", ErrPasswordTooLong, batch.PasswordLength)
	}

	bw := bufio.NewWriter(w)
	name := batch.Algorithm.String()

	if err := bw.WriteByte(hashFileVersion); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(len(name))); err != nil {
		return err
	}
	if _, err := bw.WriteString(name); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(batch.PasswordLength)); err != nil {
		return err
	}

	size := batch.Algorithm.DigestSize()
	for i, d := range batch.Digests {
		if len(d) != size {
			return fmt.Errorf("%w: digest %d has %d bytes, expected %d",
				ErrInvalidHashFile, i, len(d), size)
		}
		if _, err := bw.Write(d); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteHashFileTo writes batch to the file at path, creating or
// truncating it.
func WriteHashFileTo(path string, batch *model.HashBatch) error {
	f, err := os.Create(path) //nolint:gosec // user-chosen output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create hash file: %w", err)
	}
	if err := WriteHashFile(f, batch); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadHashFile decodes a plain hash-file from r.
//
// The plain format is strict: an unsupported version, unknown algorithm,
// or a trailing partial digest all fail the decode. This differs from the
// rainbow table format, which tolerates a truncated tail.
func ReadHashFile(r io.Reader) (*model.HashBatch, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(buf) < 3 {
		return nil, fmt.Errorf("%w: header too short", ErrInvalidHashFile)
	}
	if buf[0] != hashFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHashFile, buf[0])
	}

	nameLen := int(buf[1])
	if len(buf) < 2+nameLen+1 {
		return nil, fmt.Errorf("%w: header too short", ErrInvalidHashFile)
	}

	algo, err := model.ParseAlgorithm(string(buf[2 : 2+nameLen]))
	if err != nil {
		return nil, err
	}

	passwordLength := int(buf[2+nameLen])
	data := buf[2+nameLen+1:]

	size := algo.DigestSize()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes do not form a whole digest",
			ErrInvalidHashFile, len(data)%size)
	}

	digests := make([][]byte, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		d := make([]byte, size)
		copy(d, data[off:off+size])
		digests = append(digests, d)
	}

	return &model.HashBatch{
		Algorithm:      algo,
		PasswordLength: passwordLength,
		Digests:        digests,
	}, nil
}

// ReadHashFileFrom reads and decodes the hash-file at path.
func ReadHashFileFrom(path string) (*model.HashBatch, error) {
	f, err := os.Open(path) //nolint:gosec // user-chosen input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open hash file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return ReadHashFile(f)
}

// DumpHashFile prints a human-readable view of the hash-file at path to w:
// the header fields followed by one digest per line. Raw digests are
// hex-encoded; scrypt hashes are printed as their textual form.
func DumpHashFile(w io.Writer, path string) error {
	batch, err := ReadHashFileFrom(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "VERSION: %d\n", hashFileVersion)
	fmt.Fprintf(w, "ALGORITHM: %s\n", batch.Algorithm)
	fmt.Fprintf(w, "PASSWORD LENGTH: %d\n", batch.PasswordLength)

	for _, d := range batch.Digests {
		if batch.Algorithm == model.Scrypt {
			fmt.Fprintf(w, "%s\n", d)
		} else {
			fmt.Fprintf(w, "%s\n", hex.EncodeToString(d))
		}
	}
	return nil
}
