// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"nonb/scan"
)

// WriteTSV prints one tab-separated line per row, preceded by the
// header unless suppressed.
func WriteTSV(w io.Writer, t scan.Table, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range t {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
