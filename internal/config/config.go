// Package config loads optional user-defined motif rules from YAML and
// appends them to the built-in catalog.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nonb/motif"
)

// File is the top-level rules document.
type File struct {
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec declares one user rule. Kind "regex" takes an RE2 pattern;
// kind "tandem" takes block bounds plus a repeat threshold and matches
// `([ATGC]{min,max})\1{repeats,}` semantics.
type RuleSpec struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Pattern    string `yaml:"pattern,omitempty"`
	MinBlock   int    `yaml:"min_block,omitempty"`
	MaxBlock   int    `yaml:"max_block,omitempty"`
	MinRepeats int    `yaml:"min_repeats,omitempty"`
}

// LoadRules reads path, expands $VAR references, and returns base with
// the declared rules appended in file order. Names must be unique
// across base and the file: the output table keys on them.
func LoadRules(path string, base []motif.Rule) ([]motif.Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &f); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	names := make(map[string]bool, len(base)+len(f.Rules))
	for _, r := range base {
		names[r.Name()] = true
	}
	names[motif.InvertedRepeatName] = true

	out := append([]motif.Rule(nil), base...)
	for i, spec := range f.Rules {
		if spec.Name == "" {
			return nil, fmt.Errorf("rules[%d]: missing name", i)
		}
		if names[spec.Name] {
			return nil, fmt.Errorf("rules[%d]: duplicate rule name %q", i, spec.Name)
		}
		r, err := buildRule(spec)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
		names[spec.Name] = true
		out = append(out, r)
	}
	return out, nil
}

func buildRule(spec RuleSpec) (motif.Rule, error) {
	switch spec.Kind {
	case "regex":
		if spec.Pattern == "" {
			return nil, fmt.Errorf("rule %q: regex kind requires a pattern", spec.Name)
		}
		return motif.NewRegexRule(spec.Name, spec.Pattern)
	case "tandem":
		return motif.NewTandemRule(spec.Name, spec.MinBlock, spec.MaxBlock, spec.MinRepeats)
	default:
		return nil, fmt.Errorf("rule %q: unknown kind %q (want regex or tandem)", spec.Name, spec.Kind)
	}
}
