// motif/catalog.go
package motif

// Catalog returns the built-in non-B DNA motif rules in their canonical
// order. Several definitions overlap deliberately — Hairpin, Cruciform
// and Short Tandem Repeat differ only in thresholds — and each keeps
// its own label because downstream tables key on the names.
//
// Two pattern quirks are kept as-is for result compatibility: the
// I-Motif class `[A,T]` literally admits ',', and TFO uses the `[GATC]`
// spelling of the residue class.
func Catalog() []Rule {
	return []Rule{
		tandemRule{name: "Slipped DNA", minBlock: 2, maxBlock: 6, minRepeats: 1},
		newRegexRule("Z-DNA", `(CG){6,}`),
		tandemRule{name: "Short Tandem Repeat", minBlock: 2, maxBlock: 6, minRepeats: 2},
		newRegexRule("I-Motif", `((C[A,T]C){3,})`),
		newRegexRule("R-Loop", `(A{4,}[CG]{2,}A{4,})`),
		tandemRule{name: "Cruciform", minBlock: 4, minRepeats: 2},
		newRegexRule("G-Quadruplex", `(G{3,}[ATGC]{1,5}G{3,}[ATGC]{1,5}G{3,}[ATGC]{1,5}G{3,})`),
		tandemRule{name: "Hairpin", minBlock: 4, minRepeats: 1},
		newRegexRule("Triplex", `(A{3,}[ATGC]{1,}A{3,})`),
		newRegexRule("H-DNA", `([AG]{4,}[CT]{4,}[AG]{4,})`),
		newRegexRule("Triplex-forming oligonucleotide (TFO)", `([GATC]{6,}[AG]{4,}[CT]{4,})`),
	}
}
