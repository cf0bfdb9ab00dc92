// internal/writers/formats.go
package writers

import (
	"io"

	"nonb/internal/output"
	"nonb/scan"
)

func init() {
	Register("tsv", func(w io.Writer, t scan.Table, o Options) error {
		return output.WriteTSV(w, t, o.Header)
	})
	Register("csv", func(w io.Writer, t scan.Table, o Options) error {
		return output.WriteCSV(w, t, o.Header)
	})
	Register("json", func(w io.Writer, t scan.Table, _ Options) error {
		return output.WriteJSON(w, t)
	})
	Register("jsonl", func(w io.Writer, t scan.Table, _ Options) error {
		return output.WriteJSONL(w, t)
	})
}
