// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"nonb/internal/writers"
)

// ScanOptions holds the flags shared by the scan and watch commands.
type ScanOptions struct {
	Sequences []string
	RulesFile string
	Output    string
	Workers   int
	Header    bool
	Save      bool
	StorePath string
}

// Validate checks flag combinations before any work starts.
func (o *ScanOptions) Validate() error {
	if len(o.Sequences) == 0 {
		return Usagef("at least one --sequences file is required")
	}
	if !writers.Known(o.Output) {
		return Usagef("unknown output format %q (valid: %s)", o.Output, strings.Join(writers.Formats(), ", "))
	}
	if o.Workers < 0 {
		return Usagef("--workers must be >= 0")
	}
	if o.Save && o.StorePath == "" {
		return Usagef("--save requires a --store path")
	}
	return nil
}

// ExportOptions holds the export command's flags.
type ExportOptions struct {
	Format    string
	Out       string
	Title     string
	StorePath string
}

// Validate checks the export flags. "pdf" is valid here even though it
// is not a table writer format.
func (o *ExportOptions) Validate() error {
	if o.Format != "pdf" && !writers.Known(o.Format) {
		return Usagef("unknown export format %q (valid: %s, pdf)", o.Format, strings.Join(writers.Formats(), ", "))
	}
	if o.Format == "pdf" && o.Out == "-" {
		return Usagef("--format pdf requires --out FILE")
	}
	if o.StorePath == "" {
		return Usagef("a --store path is required")
	}
	return nil
}

// usageError marks command-line mistakes so main can exit 2 instead
// of 1.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// Usagef builds a usage error.
func Usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}
