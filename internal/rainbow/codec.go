package rainbow

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashforge/hashforge/internal/model"
)

// magicWord marks the start of every rainbow table file.
var magicWord = []byte("rainbowtable")

// tableVersion is the only supported table format version.
const tableVersion = 1

// wideFieldSize is the serialized size of the unsigned header fields
// (charset size, num links, ascii offset). The format reserves 16 bytes
// per field; this implementation supports values up to 64 bits and
// rejects larger ones with ErrNumericRange on decode.
const wideFieldSize = 16

// WriteTable encodes t to w: header first, then chain records in the
// order they appear in t.Chains. Chain computation may run in parallel,
// but callers hand the codec an already input-ordered chain list; the
// format has no embedded index, so positional order is what makes
// encode/decode deterministic.
func WriteTable(w io.Writer, t *model.RainbowTable) error {
	if t.PasswordLength > 255 {
		return fmt.Errorf("%w: %d", ErrPasswordTooLong, t.PasswordLength)
	}

	bw := bufio.NewWriter(w)
	name := t.Algorithm.String()

	if _, err := bw.Write(magicWord); err != nil {
		return err
	}
	if err := bw.WriteByte(tableVersion); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(len(name))); err != nil {
		return err
	}
	if _, err := bw.WriteString(name); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(t.PasswordLength)); err != nil {
		return err
	}
	for _, field := range []uint64{t.CharsetSize, t.NumLinks, t.ASCIIOffset} {
		if err := writeWideField(bw, field); err != nil {
			return err
		}
	}

	for i, c := range t.Chains {
		if len(c.Start) != t.PasswordLength || len(c.End) != t.PasswordLength {
			return fmt.Errorf("chain %d has start/end lengths %d/%d, expected %d",
				i, len(c.Start), len(c.End), t.PasswordLength)
		}
		if _, err := bw.WriteString(c.Start); err != nil {
			return err
		}
		if _, err := bw.WriteString(c.End); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteTableFile writes t to the file at path, creating or truncating it.
func WriteTableFile(path string, t *model.RainbowTable) error {
	f, err := os.Create(path) //nolint:gosec // user-chosen output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create rainbow table file: %w", err)
	}
	if err := WriteTable(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeWideField writes v as a 16-byte big-endian unsigned integer.
// The upper 8 bytes are always zero for values this implementation
// produces.
func writeWideField(w io.Writer, v uint64) error {
	var buf [wideFieldSize]byte
	binary.BigEndian.PutUint64(buf[8:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadTable decodes a rainbow table from r and builds its end-to-start
// index.
//
// Header validation failures are fatal: no partial table is ever
// returned. The chain region is scanned in fixed-size record chunks; a
// final chunk shorter than one full record is dropped silently (truncated
// tail tolerance). Duplicate chain ends resolve last-write-wins during
// the index build.
func ReadTable(r io.Reader) (*model.RainbowTable, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(buf) < len(magicWord) || !bytes.HasPrefix(buf, magicWord) {
		return nil, ErrInvalidMagic
	}
	cursor := len(magicWord)

	if len(buf) < cursor+2 {
		return nil, fmt.Errorf("%w: truncated before version", ErrInvalidHeader)
	}
	if buf[cursor] != tableVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, buf[cursor])
	}
	cursor++

	nameLen := int(buf[cursor])
	cursor++
	if len(buf) < cursor+nameLen+1+3*wideFieldSize {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidHeader)
	}

	algo, err := model.ParseAlgorithm(string(buf[cursor : cursor+nameLen]))
	if err != nil {
		return nil, err
	}
	cursor += nameLen

	passwordLength := int(buf[cursor])
	cursor++
	if passwordLength == 0 {
		return nil, fmt.Errorf("%w: zero password length", ErrInvalidHeader)
	}

	var fields [3]uint64
	for i := range fields {
		fields[i], err = readWideField(buf[cursor : cursor+wideFieldSize])
		if err != nil {
			return nil, err
		}
		cursor += wideFieldSize
	}

	t := &model.RainbowTable{
		Algorithm:      algo,
		PasswordLength: passwordLength,
		CharsetSize:    fields[0],
		NumLinks:       fields[1],
		ASCIIOffset:    fields[2],
	}

	recordSize := 2 * passwordLength
	data := buf[cursor:]
	for off := 0; off+recordSize <= len(data); off += recordSize {
		t.Chains = append(t.Chains, model.Chain{
			Start: string(data[off : off+passwordLength]),
			End:   string(data[off+passwordLength : off+recordSize]),
		})
	}
	if tail := len(data) % recordSize; tail != 0 {
		slog.Warn("dropping truncated trailing chain record", "bytes", tail)
	}

	t.BuildEndIndex()
	return t, nil
}

// ReadTableFile reads and decodes the rainbow table at path.
func ReadTableFile(path string) (*model.RainbowTable, error) {
	f, err := os.Open(path) //nolint:gosec // user-chosen input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open rainbow table file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// readWideField decodes a 16-byte big-endian unsigned integer, rejecting
// values that exceed 64 bits.
func readWideField(b []byte) (uint64, error) {
	if binary.BigEndian.Uint64(b[:8]) != 0 {
		return 0, fmt.Errorf("%w: value exceeds 64 bits", ErrNumericRange)
	}
	return binary.BigEndian.Uint64(b[8:wideFieldSize]), nil
}
