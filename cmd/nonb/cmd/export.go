package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"nonb/internal/app"
	"nonb/internal/cli"
	"nonb/internal/report"
	"nonb/internal/store"
)

var exportOpts cli.ExportOptions

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a saved run",
	Long: "Renders a run persisted with `nonb scan --save` as a table format\n" +
		"or as the line-per-match PDF report.",
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportOpts.Format, "format", "tsv", "export format: tsv | csv | json | jsonl | pdf")
	f.StringVar(&exportOpts.Out, "out", "-", "output file ('-' = stdout; pdf requires a file)")
	f.StringVar(&exportOpts.Title, "title", report.DefaultTitle, "pdf report title")
	f.StringVar(&exportOpts.StorePath, "store", defaultStorePath(), "run store path")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := exportOpts.Validate(); err != nil {
		return err
	}

	st, err := store.Open(exportOpts.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.Get(args[0])
	if err != nil {
		return err
	}

	if exportOpts.Format == "pdf" {
		return report.WriteFile(exportOpts.Out, exportOpts.Title, run.Rows)
	}

	out := cmd.OutOrStdout()
	if exportOpts.Out != "-" {
		f, err := os.Create(exportOpts.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return app.RenderTable(out, exportOpts.Format, run.Rows, true)
}
