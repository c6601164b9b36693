package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs a crack session as a Markdown document. This
// format is designed for documentation and sharing rather than piping.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation (headings, tables) instead of manual
// string assembly.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the full session report in Markdown format.
func (w *MarkdownWriter) Write(session *Session) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Crack Session Report")
	md.PlainText("")

	w.writeTableInfo(md, session)
	w.writeSummary(md, session)
	w.writeResults(md, session)

	return len(md.String()), md.Build()
}

// writeTableInfo writes the rainbow table metadata section.
func (w *MarkdownWriter) writeTableInfo(md *markdown.Markdown, session *Session) {
	md.H2("Rainbow Table")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Algorithm", session.Algorithm.String()},
			{"Password Length", strconv.Itoa(session.PasswordLength)},
			{"Chain Links", strconv.FormatUint(session.NumLinks, 10)},
			{"Charset Size", strconv.FormatUint(session.CharsetSize, 10)},
			{"ASCII Offset", strconv.FormatUint(session.ASCIIOffset, 10)},
			{"Chains", strconv.Itoa(session.ChainCount)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the recovery statistics section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, session *Session) {
	recovered := len(session.Results)
	rate := "0%"
	if session.Targets > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(recovered)/float64(session.Targets)*100)
	}

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Targets", strconv.Itoa(session.Targets)},
			{"Recovered", strconv.Itoa(recovered)},
			{"From Pot Database", strconv.Itoa(session.FromPot)},
			{"Recovery Rate", rate},
			{"Elapsed", session.Elapsed.String()},
		},
	})
	md.PlainText("")
}

// writeResults writes one table row per verified recovery.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, session *Session) {
	md.H2("Recovered Plaintexts")
	md.PlainText("")

	if len(session.Results) == 0 {
		md.PlainText("No plaintexts were recovered.")
		return
	}

	rows := make([][]string, 0, len(session.Results))
	for _, r := range session.Results {
		rows = append(rows, []string{
			"`" + hex.EncodeToString(r.Digest) + "`",
			"`" + r.Plaintext + "`",
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Digest", "Plaintext"},
		Rows:   rows,
	})
}
