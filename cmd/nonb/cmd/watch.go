package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nonb/internal/app"
	"nonb/internal/cli"
	"nonb/internal/logging"
	"nonb/internal/watch"
	"nonb/scan"
)

var watchOpts cli.ScanOptions

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-scan FASTA inputs whenever they change",
	Long: "Scans the given inputs once, then watches them and re-renders the\n" +
		"combined table after each change. Runs until interrupted.",
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringSliceVar(&watchOpts.Sequences, "sequences", nil, "FASTA file(s) or directories (repeatable)")
	f.StringVar(&watchOpts.Output, "output", "tsv", "output format: tsv | csv | json | jsonl")
	f.IntVar(&watchOpts.Workers, "workers", 0, "worker goroutines (0 = all CPUs)")
	f.StringVar(&watchOpts.RulesFile, "rules", "", "YAML file with extra motif rules")
}

func runWatch(cmd *cobra.Command, args []string) error {
	watchOpts.Header = true
	if err := watchOpts.Validate(); err != nil {
		return err
	}

	rules, err := app.BuildRules(watchOpts.RulesFile)
	if err != nil {
		return err
	}
	sc := scan.New(rules)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// Initial pass; per-file tables are cached so one change only
	// rescans one file. Keys are absolute paths to line up with the
	// watcher's change notifications; directory arguments contribute
	// files only once the watcher reports them.
	tables := map[string]scan.Table{}
	var order []string
	for _, f := range watchOpts.Sequences {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("stat %s: %w", f, err)
		}
		if info.IsDir() {
			continue
		}
		t, err := app.ScanFile(ctx, sc, watchOpts.Workers, abs)
		if err != nil {
			return err
		}
		order = append(order, abs)
		tables[abs] = t
	}
	if err := render(out, tables, order); err != nil {
		return err
	}

	return watch.Watch(ctx, watchOpts.Sequences, func(path string) {
		t, err := app.ScanFile(ctx, sc, watchOpts.Workers, path)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Get().Error().Str("file", path).Err(err).Msg("rescan failed")
			return
		}
		if _, known := tables[path]; !known {
			order = append(order, path)
		}
		tables[path] = t
		if err := render(out, tables, order); err != nil && ctx.Err() == nil {
			logging.Get().Error().Err(err).Msg("render failed")
		}
	})
}

func render(out io.Writer, tables map[string]scan.Table, order []string) error {
	collated := make([]scan.Table, 0, len(order))
	for _, f := range order {
		collated = append(collated, tables[f])
	}
	return app.RenderTable(out, watchOpts.Output, scan.Collate(collated), watchOpts.Header)
}
