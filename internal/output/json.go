// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"nonb/scan"
)

// WriteJSON writes a single pretty-indented JSON array of v1 rows.
func WriteJSON(w io.Writer, t scan.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIRows(t))
}

// WriteJSONL writes one v1 row object per line.
func WriteJSONL(w io.Writer, t scan.Table) error {
	enc := json.NewEncoder(w)
	for _, r := range t {
		if err := enc.Encode(ToAPIRow(r)); err != nil {
			return err
		}
	}
	return nil
}
