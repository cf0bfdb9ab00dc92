// internal/output/common.go
package output

// Columns is the canonical column order of the result table. All
// writers derive their headers and field order from it; keep it the
// single source of truth.
var Columns = []string{"sequence_id", "motif", "start", "end", "matched_text", "length"}

// TSVHeader is the tab-joined form of Columns.
const TSVHeader = "sequence_id\tmotif\tstart\tend\tmatched_text\tlength"
