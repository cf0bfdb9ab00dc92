// scan/collate.go
package scan

// Collate concatenates tables in input order. Nothing is deduplicated
// or re-sorted, so row order is fully determined by the input order.
// Empty input yields an empty table.
func Collate(tables []Table) Table {
	out := Table{}
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}
