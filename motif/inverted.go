// motif/inverted.go
package motif

// InvertedRepeatName tags matches emitted by FindInvertedRepeats.
const InvertedRepeatName = "Inverted Repeat"

// InvertedRepeatPattern describes the detector's structural grammar for
// catalog listings; the reversal equality test is applied on top of it.
const InvertedRepeatPattern = `([ATGC]{3,})[ATGC]{0,10}([ATGC]{3,}) where arm1 == reverse(arm2)`

const (
	minArm = 3
	maxGap = 10
)

// FindInvertedRepeats scans for two arms of at least 3 residues
// separated by a gap of at most 10 residues where the first arm equals
// the literal character reversal of the second. The emitted match spans
// both arms and the gap.
//
// Reversal here is NOT reverse-complement: equality is tested against
// the plain reversed text, kept for output compatibility with earlier
// result tables even though a biological inverted repeat is defined by
// reverse-complement identity.
//
// At each position the longest arm is tried first, shortest gap first;
// the first reversal-equal assignment wins and its whole span is
// consumed. When no assignment at the head of an ATGC run qualifies,
// the rest of the run is skipped rather than re-tried at every offset.
// That trades recall for a single non-overlapping pass; failed
// candidates are discarded silently.
func FindInvertedRepeats(seq []byte) []Match {
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
			span := invertedAt(seq, i, run)
			if span == 0 {
				break
			}
			out = append(out, Match{
				Motif: InvertedRepeatName,
				Start: i + 1,
				End:   i + span,
				Seq:   string(seq[i : i+span]),
			})
			i += span
		}
		i = run
	}
	return out
}

// invertedAt returns the full span (arm, gap, arm) of the first
// reversal-equal assignment starting at pos, or 0.
func invertedAt(seq []byte, pos, runEnd int) int {
	avail := runEnd - pos
	for arm := avail / 2; arm >= minArm; arm-- {
		gapMax := avail - 2*arm
		if gapMax > maxGap {
			gapMax = maxGap
		}
		for gap := 0; gap <= gapMax; gap++ {
			if reversedEqual(seq[pos:pos+arm], seq[pos+arm+gap:pos+2*arm+gap]) {
				return 2*arm + gap
			}
		}
	}
	return 0
}

// reversedEqual reports a == reverse(b); the arms have equal length.
func reversedEqual(a, b []byte) bool {
	for i := range a {
		if a[i] != b[len(b)-1-i] {
			return false
		}
	}
	return true
}
