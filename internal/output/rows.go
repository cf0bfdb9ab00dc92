// internal/output/rows.go
package output

import (
	"fmt"

	"nonb/pkg/api"
	"nonb/scan"
)

// FormatRowTSV returns one table row as its six tab-separated columns
// (no trailing newline).
func FormatRowTSV(r scan.Row) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%d",
		r.SequenceID, r.Motif, r.Start, r.End, r.Seq, r.Length)
}

// ToAPIRow converts a domain row to the stable wire schema (v1).
func ToAPIRow(r scan.Row) api.RowV1 {
	return api.RowV1{
		SequenceID:  r.SequenceID,
		Motif:       r.Motif,
		Start:       r.Start,
		End:         r.End,
		MatchedText: r.Seq,
		Length:      r.Length,
	}
}

func toAPIRows(t scan.Table) []api.RowV1 {
	out := make([]api.RowV1, 0, len(t))
	for _, r := range t {
		out = append(out, ToAPIRow(r))
	}
	return out
}
