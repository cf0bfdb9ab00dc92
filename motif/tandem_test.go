// motif/tandem_test.go
package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlippedDNAGreedyBlock(t *testing.T) {
	// The longest block wins: ATAT+ATAT, not AT x4 reported twice.
	ms := findByName(t, "Slipped DNA", []byte("ATATATAT"))
	require.Len(t, ms, 1)
	assert.Equal(t, Match{Motif: "Slipped DNA", Start: 1, End: 8, Seq: "ATATATAT"}, ms[0])
}

func TestShortTandemRepeatNeedsThreeCopies(t *testing.T) {
	ms := findByName(t, "Short Tandem Repeat", []byte("CAGCAGCAGCAG"))
	require.Len(t, ms, 1)
	assert.Equal(t, 1, ms[0].Start)
	assert.Equal(t, 12, ms[0].End)

	// Two copies are not enough for a short tandem repeat.
	assert.Empty(t, findByName(t, "Short Tandem Repeat", []byte("CAGCAG")))
}

func TestCruciformThresholds(t *testing.T) {
	// Block >= 4 repeated at least twice more.
	assert.Empty(t, findByName(t, "Cruciform", []byte("ATGCATGC")))

	ms := findByName(t, "Cruciform", []byte("ATGCATGCATGC"))
	require.Len(t, ms, 1)
	assert.Equal(t, "ATGCATGCATGC", ms[0].Seq)
}

func TestHairpinMatchesWhereCruciformDoesNot(t *testing.T) {
	// Same block grammar, lower copy threshold; both labels are kept
	// as independently defined even though they overlap.
	seq := []byte("ATGCATGC")
	assert.NotEmpty(t, findByName(t, "Hairpin", seq))
	assert.Empty(t, findByName(t, "Cruciform", seq))
}

func TestTandemSpanConsumedBeforeRescan(t *testing.T) {
	ms := findByName(t, "Slipped DNA", []byte("AAAA"))
	require.Len(t, ms, 1)
	assert.Equal(t, Match{Motif: "Slipped DNA", Start: 1, End: 4, Seq: "AAAA"}, ms[0])
}

func TestTandemStopsAtNonResidue(t *testing.T) {
	ms := findByName(t, "Slipped DNA", []byte("ATATNATAT"))
	require.Len(t, ms, 2)
	assert.Equal(t, 1, ms[0].Start)
	assert.Equal(t, 4, ms[0].End)
	assert.Equal(t, 6, ms[1].Start)
	assert.Equal(t, 9, ms[1].End)
}

func TestNewTandemRuleValidation(t *testing.T) {
	_, err := NewTandemRule("", 2, 6, 1)
	assert.Error(t, err)
	_, err = NewTandemRule("x", 0, 6, 1)
	assert.Error(t, err)
	_, err = NewTandemRule("x", 4, 2, 1)
	assert.Error(t, err)
	_, err = NewTandemRule("x", 2, 6, 0)
	assert.Error(t, err)

	r, err := NewTandemRule("x", 2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, `([ATGC]{2,})\1{1,}`, r.Pattern())
}
