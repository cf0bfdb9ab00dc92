package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nonb/internal/app"
	"nonb/internal/cli"
	"nonb/internal/logging"
	"nonb/internal/store"
)

var (
	scanOpts     cli.ScanOptions
	scanNoHeader bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan FASTA sequences for non-B DNA motifs",
	Long: "Scans every sequence of the given FASTA files against the motif\n" +
		"catalog plus the inverted-repeat detector and prints one row per\n" +
		"match. Zero matches is a success with an empty table.",
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringSliceVar(&scanOpts.Sequences, "sequences", nil, "FASTA file(s), '-' for stdin (repeatable)")
	f.StringVar(&scanOpts.Output, "output", "tsv", "output format: tsv | csv | json | jsonl")
	f.IntVar(&scanOpts.Workers, "workers", 0, "worker goroutines (0 = all CPUs)")
	f.StringVar(&scanOpts.RulesFile, "rules", "", "YAML file with extra motif rules")
	f.BoolVar(&scanNoHeader, "no-header", false, "omit the header row (tsv/csv)")
	f.BoolVar(&scanOpts.Save, "save", false, "persist the run to the run store")
	f.StringVar(&scanOpts.StorePath, "store", defaultStorePath(), "run store path")
}

func runScan(cmd *cobra.Command, args []string) error {
	scanOpts.Header = !scanNoHeader
	if err := scanOpts.Validate(); err != nil {
		return err
	}

	table, err := app.RunScan(cmd.Context(), cmd.OutOrStdout(), scanOpts)
	if err != nil {
		return err
	}

	if scanOpts.Save {
		if err := os.MkdirAll(filepath.Dir(scanOpts.StorePath), 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
		st, err := store.Open(scanOpts.StorePath)
		if err != nil {
			return err
		}
		defer st.Close()
		run := store.NewRun(scanOpts.Sequences, table)
		if err := st.Save(run); err != nil {
			return err
		}
		logging.Get().Info().Str("run_id", run.ID).Int("rows", len(table)).Msg("run saved")
	}
	return nil
}
