// scan/scan.go
package scan

import "nonb/motif"

// Scanner applies an ordered rule list plus the inverted-repeat
// detector to single sequences. It is stateless after construction and
// safe to share across goroutines.
type Scanner struct {
	rules []motif.Rule
}

// New builds a Scanner. Rules are applied in the given order; pass
// motif.Catalog() for the built-in set.
func New(rules []motif.Rule) *Scanner {
	return &Scanner{rules: rules}
}

// Scan returns every rule's matches in rule order (each rule's matches
// in left-to-right discovery order), followed by inverted repeats in
// discovery order. Matches of different rules may overlap; matches of
// one rule never do. A zero-length sequence yields an empty list.
func (s *Scanner) Scan(seq []byte) []motif.Match {
	out := make([]motif.Match, 0, 16)
	for _, r := range s.rules {
		out = append(out, r.Find(seq)...)
	}
	return append(out, motif.FindInvertedRepeats(seq)...)
}
