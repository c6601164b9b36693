package report

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/hashforge/hashforge/internal/model"
)

// Session describes one completed crack run: the table it ran against,
// the batch it processed, and the verified results.
type Session struct {
	// Algorithm is the table's (and batch's) digest algorithm.
	Algorithm model.Algorithm

	// PasswordLength is the table's fixed plaintext length.
	PasswordLength int

	// NumLinks is the table's digest-reduce cycle count per chain.
	NumLinks uint64

	// CharsetSize is the table's reduction modulus.
	CharsetSize uint64

	// ASCIIOffset is the table's reduction code point offset.
	ASCIIOffset uint64

	// ChainCount is the number of chain records in the table.
	ChainCount int

	// Targets is the total number of digests in the batch.
	Targets int

	// FromPot is how many results came from the pot database instead of
	// the table search.
	FromPot int

	// Results holds all verified recoveries, pot hits included.
	Results []model.CrackResult

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Writer defines the interface for crack result output.
//
// Design decision: We use an interface so the same crack pipeline can
// feed a terminal, a file, or both without caring about format. Writers
// report bytes written like io.Writer does, but consume a Session, not
// raw bytes.
type Writer interface {
	// Write outputs the session to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(session *Session) (int, error)
}

// TSVWriter outputs one "hex digest<TAB>plaintext" line per verified
// result. This is the machine-readable default format.
type TSVWriter struct {
	output io.Writer
}

// NewTSVWriter creates a TSVWriter that outputs to the given writer.
func NewTSVWriter(output io.Writer) *TSVWriter {
	return &TSVWriter{output: output}
}

// Write outputs the session's results, one line each, in result order.
func (w *TSVWriter) Write(session *Session) (int, error) {
	bw := bufio.NewWriter(w.output)
	var total int
	for _, r := range session.Results {
		n, err := fmt.Fprintf(bw, "%s\t%s\n", hex.EncodeToString(r.Digest), r.Plaintext)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// MultiWriter writes to multiple Writers simultaneously, useful for
// outputting to both terminal and file. Stops on first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the session to all configured Writers.
// Returns the total bytes written across all writers.
func (m *MultiWriter) Write(session *Session) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(session)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
