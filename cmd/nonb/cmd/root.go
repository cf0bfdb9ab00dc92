package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nonb/internal/logging"
)

var (
	logLevel string
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "nonb",
	Short: "nonb — non-B DNA motif scanner",
	Long: "Scans nucleotide sequences for structural motifs associated with\n" +
		"non-canonical DNA conformations: repeat families, quadruplexes,\n" +
		"inverted repeats, and friends.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{Level: logLevel, Format: "console", Output: os.Stderr})
		if quiet {
			logging.SetLevel("error")
		}
	},
}

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// defaultStorePath keeps the run database under the user's home
// directory, falling back to the working directory.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nonb-runs.db"
	}
	return filepath.Join(home, ".nonb", "runs.db")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace | debug | info | warn | error")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(motifsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}
