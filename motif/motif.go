// motif/motif.go
package motif

// Match is one occurrence of a motif within a sequence.
// Start and End are 1-based inclusive positions; Seq is the exact
// matched substring.
type Match struct {
	Motif string
	Start int
	End   int
	Seq   string
}

// Rule is a named matching rule over nucleotide text. Find scans seq
// left to right with non-overlapping semantics and returns matches in
// discovery order. Rules are immutable after construction and safe to
// share across goroutines.
type Rule interface {
	Name() string
	Pattern() string
	Find(seq []byte) []Match
}

func isResidue(b byte) bool {
	return b == 'A' || b == 'T' || b == 'G' || b == 'C'
}
