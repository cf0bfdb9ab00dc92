// motif/tandem.go
package motif

import (
	"bytes"
	"fmt"
)

// tandemRule finds repeat motifs of the form "block of minBlock..maxBlock
// ATGC residues followed by at least minRepeats exact extra copies of
// that block" — the `([ATGC]{m,n})\1{k,}` grammar. RE2 has no
// back-references, so the repetition check is a direct substring
// comparison instead of a regex.
//
// Scanning mirrors the greedy behavior of a backtracking engine: at
// each offset the longest block length is tried first and trailing
// copies are counted greedily; a successful match consumes its whole
// span, a failed offset advances by one.
type tandemRule struct {
	name       string
	minBlock   int
	maxBlock   int // 0 = unbounded
	minRepeats int // extra copies required beyond the first block
}

// NewTandemRule builds a tandem-repeat rule for user-defined configs.
// maxBlock 0 means unbounded.
func NewTandemRule(name string, minBlock, maxBlock, minRepeats int) (Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("tandem rule: empty name")
	}
	if minBlock < 1 {
		return nil, fmt.Errorf("rule %q: min_block must be >= 1", name)
	}
	if maxBlock != 0 && maxBlock < minBlock {
		return nil, fmt.Errorf("rule %q: max_block %d < min_block %d", name, maxBlock, minBlock)
	}
	if minRepeats < 1 {
		return nil, fmt.Errorf("rule %q: min_repeats must be >= 1", name)
	}
	return tandemRule{name: name, minBlock: minBlock, maxBlock: maxBlock, minRepeats: minRepeats}, nil
}

func (r tandemRule) Name() string { return r.name }

// Pattern reports the rule in its back-reference grammar form.
func (r tandemRule) Pattern() string {
	if r.maxBlock > 0 {
		return fmt.Sprintf(`([ATGC]{%d,%d})\1{%d,}`, r.minBlock, r.maxBlock, r.minRepeats)
	}
	return fmt.Sprintf(`([ATGC]{%d,})\1{%d,}`, r.minBlock, r.minRepeats)
}

func (r tandemRule) Find(seq []byte) []Match {
	var out []Match
	i := 0
	for i < len(seq) {
		if !isResidue(seq[i]) {
			i++
			continue
		}
		run := i
		for run < len(seq) && isResidue(seq[run]) {
			run++
		}
		for i < run {
			span := r.matchAt(seq, i, run)
			if span == 0 {
				i++
				continue
			}
			out = append(out, Match{
				Motif: r.name,
				Start: i + 1,
				End:   i + span,
				Seq:   string(seq[i : i+span]),
			})
			i += span
		}
	}
	return out
}

// matchAt returns the length of the full repeat span starting at pos,
// or 0 when no block length qualifies. Blocks never cross runEnd.
func (r tandemRule) matchAt(seq []byte, pos, runEnd int) int {
	max := (runEnd - pos) / (r.minRepeats + 1)
	if r.maxBlock > 0 && r.maxBlock < max {
		max = r.maxBlock
	}
	for l := max; l >= r.minBlock; l-- {
		block := seq[pos : pos+l]
		n := 0
		for p := pos + l; p+l <= runEnd && bytes.Equal(seq[p:p+l], block); p += l {
			n++
		}
		if n >= r.minRepeats {
			return l * (n + 1)
		}
	}
	return 0
}
