// Package output renders fragment tables.
package output

import (
	"fmt"
	"io"

	"ddradsim-core/digest"
)

// TSVHeader is the column line of the fragment table.
const TSVHeader = "scaffold\tstart\tend\tlength"

// WriteTSV writes retained fragments as a tab-delimited table, one row
// per fragment, in pipeline order.
func WriteTSV(w io.Writer, results []digest.ScaffoldDigest, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range results {
		for _, f := range r.Fragments {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", f.Scaffold, f.Start, f.End, f.Length()); err != nil {
				return err
			}
		}
	}
	return nil
}
