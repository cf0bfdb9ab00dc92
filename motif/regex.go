// motif/regex.go
package motif

import (
	"fmt"
	"regexp"
)

// regexRule matches an RE2 pattern with non-overlapping leftmost
// scanning. Go's default leftmost-first semantics reproduce a
// backtracking engine's finditer for the catalog patterns.
type regexRule struct {
	name string
	re   *regexp.Regexp
}

// NewRegexRule builds a rule from an RE2 pattern. Used for
// user-defined rules loaded from config.
func NewRegexRule(name, pattern string) (Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("regex rule: empty name")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return regexRule{name: name, re: re}, nil
}

func newRegexRule(name, pattern string) regexRule {
	return regexRule{name: name, re: regexp.MustCompile(pattern)}
}

func (r regexRule) Name() string    { return r.name }
func (r regexRule) Pattern() string { return r.re.String() }

func (r regexRule) Find(seq []byte) []Match {
	var out []Match
	for _, loc := range r.re.FindAllIndex(seq, -1) {
		if loc[1] == loc[0] {
			// zero-length matches cannot form a 1-based inclusive span
			continue
		}
		out = append(out, Match{
			Motif: r.name,
			Start: loc[0] + 1,
			End:   loc[1],
			Seq:   string(seq[loc[0]:loc[1]]),
		})
	}
	return out
}
