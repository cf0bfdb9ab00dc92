package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nonb/internal/store"
)

var (
	runsStorePath string
	runsDelete    string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved scan runs",
	Long:  "Lists runs persisted with `nonb scan --save`, newest first.",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsStorePath, "store", defaultStorePath(), "run store path")
	runsCmd.Flags().StringVar(&runsDelete, "delete", "", "delete the run with this ID instead of listing")
}

func runRuns(cmd *cobra.Command, args []string) error {
	st, err := store.Open(runsStorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	if runsDelete != "" {
		return st.Delete(runsDelete)
	}

	runs, err := st.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "run_id\tcreated_at\tfiles\trows")
	for _, r := range runs {
		fmt.Fprintf(out, "%s\t%s\t%s\t%d\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), strings.Join(r.Files, ","), len(r.Rows))
	}
	return nil
}
