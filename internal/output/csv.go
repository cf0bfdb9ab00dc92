// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"nonb/scan"
)

// WriteCSV renders the table as comma-separated values; the header is
// written unless suppressed.
func WriteCSV(w io.Writer, t scan.Table, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(Columns); err != nil {
			return err
		}
	}
	for _, r := range t {
		rec := []string{
			r.SequenceID,
			r.Motif,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			r.Seq,
			strconv.Itoa(r.Length),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
