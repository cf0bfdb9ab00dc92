// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"nonb/scan"
)

// Options adjusts rendering; only the tabular formats honor Header.
type Options struct {
	Header bool
}

// registry maps format name to handler. Formats register in init()
// blocks; last registration wins.
var registry = map[string]func(w io.Writer, t scan.Table, o Options) error{}

// Register installs a table writer under a format name.
func Register(format string, fn func(io.Writer, scan.Table, Options) error) {
	registry[format] = fn
}

// Known reports whether a format is registered.
func Known(format string) bool {
	_, ok := registry[format]
	return ok
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches the table to the named format's handler.
func Write(format string, w io.Writer, t scan.Table, o Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, t, o)
}
