package rainbow

import (
	"fmt"
	"io"
)

// DumpTable prints a human-readable view of the rainbow table at path to
// w: one line per header field, then one "start<TAB>end" line per chain
// record. A malformed trailing record ends the listing early without
// failing the dump, matching the codec's truncated-tail tolerance.
func DumpTable(w io.Writer, path string) error {
	t, err := ReadTableFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "VERSION: %d\n", tableVersion)
	fmt.Fprintf(w, "ALGORITHM: %s\n", t.Algorithm)
	fmt.Fprintf(w, "PASSWORD LENGTH: %d\n", t.PasswordLength)
	fmt.Fprintf(w, "CHARSET SIZE: %d\n", t.CharsetSize)
	fmt.Fprintf(w, "NUM LINKS: %d\n", t.NumLinks)
	fmt.Fprintf(w, "ASCII OFFSET: %d\n", t.ASCIIOffset)

	for _, c := range t.Chains {
		fmt.Fprintf(w, "%s\t%s\n", c.Start, c.End)
	}
	return nil
}
