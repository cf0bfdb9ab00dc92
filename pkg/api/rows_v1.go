// pkg/api/rows_v1.go
package api

// RowV1 is the stable JSON/JSONL schema for motif rows.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RowV1 struct {
	SequenceID  string `json:"sequence_id"`
	Motif       string `json:"motif"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	MatchedText string `json:"matched_text"`
	Length      int    `json:"length"`
}
