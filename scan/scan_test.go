// scan/scan_test.go
package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nonb/motif"
)

func TestScanEmptySequence(t *testing.T) {
	s := New(motif.Catalog())
	assert.Empty(t, s.Scan(nil))
	assert.Empty(t, s.Scan([]byte{}))
}

func TestScanRuleOrderThenInverted(t *testing.T) {
	// Z-DNA body followed by an inverted repeat with a distinct arm.
	seq := []byte("CGCGCGCGCGCG" + "N" + "TTAGGATT")
	s := New(motif.Catalog())
	ms := s.Scan(seq)
	require.NotEmpty(t, ms)

	// Motifs must appear grouped in catalog order, inverted repeats last.
	order := map[string]int{}
	for i, r := range motif.Catalog() {
		order[r.Name()] = i
	}
	order[motif.InvertedRepeatName] = len(order)
	last := -1
	for _, m := range ms {
		rank, ok := order[m.Motif]
		require.True(t, ok, "unknown motif %q", m.Motif)
		require.GreaterOrEqual(t, rank, last, "motif %q out of catalog order", m.Motif)
		last = rank
	}
	assert.Equal(t, motif.InvertedRepeatName, ms[len(ms)-1].Motif)
}

func TestScanIsIdempotent(t *testing.T) {
	seq := []byte("GGGATGGGATGGGATGGGCAGCAGCAGATGCATGGGGGCCCCCTACGTA")
	s := New(motif.Catalog())
	assert.Equal(t, s.Scan(seq), s.Scan(seq))
}

func TestScanOverlapAcrossRulesAllowed(t *testing.T) {
	// CAGCAGCAGCAG satisfies both Slipped DNA and Short Tandem Repeat;
	// both labels must be reported over the same span.
	seq := []byte("CAGCAGCAGCAG")
	s := New(motif.Catalog())
	var names []string
	for _, m := range s.Scan(seq) {
		names = append(names, m.Motif)
	}
	assert.Contains(t, names, "Slipped DNA")
	assert.Contains(t, names, "Short Tandem Repeat")
}
