package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nonb/internal/app"
	"nonb/internal/cli"
	"nonb/motif"
)

var (
	motifsOutput string
	motifsRules  string
)

var motifsCmd = &cobra.Command{
	Use:   "motifs",
	Short: "List the motif catalog",
	Long: "Prints every matching rule (built-in plus any --rules additions)\n" +
		"with its pattern grammar, ending with the inverted-repeat detector.",
	RunE: runMotifs,
}

func init() {
	motifsCmd.Flags().StringVar(&motifsOutput, "output", "tsv", "output format: tsv | json")
	motifsCmd.Flags().StringVar(&motifsRules, "rules", "", "YAML file with extra motif rules")
}

type catalogEntry struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

func runMotifs(cmd *cobra.Command, args []string) error {
	rules, err := app.BuildRules(motifsRules)
	if err != nil {
		return err
	}
	entries := make([]catalogEntry, 0, len(rules)+1)
	for _, r := range rules {
		entries = append(entries, catalogEntry{Name: r.Name(), Pattern: r.Pattern()})
	}
	entries = append(entries, catalogEntry{Name: motif.InvertedRepeatName, Pattern: motif.InvertedRepeatPattern})

	out := cmd.OutOrStdout()
	switch motifsOutput {
	case "tsv":
		for _, e := range entries {
			fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Pattern)
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return cli.Usagef("unknown output format %q (valid: tsv, json)", motifsOutput)
	}
}
