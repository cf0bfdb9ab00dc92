// Package app orchestrates scans for the CLI: build the rule set, load
// FASTA, fan out across sequences, collate, and render.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"nonb/fasta"
	"nonb/internal/cli"
	"nonb/internal/config"
	"nonb/internal/logging"
	"nonb/internal/writers"
	"nonb/motif"
	"nonb/scan"
)

// BuildRules returns the built-in catalog, extended from rulesFile when
// one is given.
func BuildRules(rulesFile string) ([]motif.Rule, error) {
	base := motif.Catalog()
	if rulesFile == "" {
		return base, nil
	}
	return config.LoadRules(rulesFile, base)
}

// ScanFile loads one FASTA file and scans every record on the worker
// pool, returning that file's table.
func ScanFile(ctx context.Context, sc *scan.Scanner, workers int, path string) (scan.Table, error) {
	start := time.Now()
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t, err := scan.AnalyzeBatch(ctx, scan.Config{Workers: workers}, recs, sc.Scan)
	if err != nil {
		return nil, err
	}
	logging.Get().Info().
		Str("file", path).
		Int("records", len(recs)).
		Int("rows", len(t)).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("scanned")
	return t, nil
}

// RunScan scans every file in o.Sequences, collates the per-file
// tables, and renders the result to out in o.Output format. The
// collated table is returned for callers that persist it. A broken
// pipe on out counts as success.
func RunScan(ctx context.Context, out io.Writer, o cli.ScanOptions) (scan.Table, error) {
	rules, err := BuildRules(o.RulesFile)
	if err != nil {
		return nil, err
	}
	sc := scan.New(rules)

	tables := make([]scan.Table, 0, len(o.Sequences))
	for _, f := range o.Sequences {
		t, err := ScanFile(ctx, sc, o.Workers, f)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	table := scan.Collate(tables)

	if err := RenderTable(out, o.Output, table, o.Header); err != nil {
		return nil, err
	}
	return table, nil
}

// RenderTable writes one table through the format registry, buffered,
// swallowing broken-pipe errors.
func RenderTable(out io.Writer, format string, table scan.Table, header bool) error {
	bw := bufio.NewWriter(out)
	if err := writers.Write(format, bw, table, writers.Options{Header: header}); err != nil {
		if writers.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	if err := bw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return err
	}
	return nil
}
