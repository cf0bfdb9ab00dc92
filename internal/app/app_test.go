// internal/app/app_test.go
package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nonb/internal/cli"
)

func writeFasta(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(body), 0o644))
	return fn
}

func TestRunScanTSV(t *testing.T) {
	fa := writeFasta(t, ">s1\nCGCGCGCGCGCGCG\n>s2\nNNNN\n")
	var buf bytes.Buffer

	table, err := RunScan(context.Background(), &buf, cli.ScanOptions{
		Sequences: []string{fa},
		Output:    "tsv",
		Workers:   2,
		Header:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, table)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	assert.Contains(t, lines[0], "sequence_id")
	assert.Contains(t, buf.String(), "s1\tZ-DNA\t1\t14\tCGCGCGCGCGCGCG\t14")
	// s2 is all N and contributes no rows.
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "s1\t"), "unexpected row %q", l)
	}
}

func TestRunScanZeroMatchesIsSuccess(t *testing.T) {
	fa := writeFasta(t, ">only\nNNNNNNNN\n")
	var buf bytes.Buffer

	table, err := RunScan(context.Background(), &buf, cli.ScanOptions{
		Sequences: []string{fa},
		Output:    "tsv",
		Header:    false,
	})
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Empty(t, table)
	assert.Empty(t, buf.String())
}

func TestRunScanMultipleFilesCollateInOrder(t *testing.T) {
	dir := t.TempDir()
	fa1 := filepath.Join(dir, "a.fa")
	fa2 := filepath.Join(dir, "b.fa")
	require.NoError(t, os.WriteFile(fa1, []byte(">a\nCGCGCGCGCGCGCG\n"), 0o644))
	require.NoError(t, os.WriteFile(fa2, []byte(">b\nGGGATGGGATGGGATGGG\n"), 0o644))

	var buf bytes.Buffer
	table, err := RunScan(context.Background(), &buf, cli.ScanOptions{
		Sequences: []string{fa1, fa2},
		Output:    "jsonl",
		Workers:   1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, table)

	// Rows of a.fa strictly precede rows of b.fa.
	lastA := -1
	firstB := len(table)
	for i, r := range table {
		switch r.SequenceID {
		case "a":
			lastA = i
		case "b":
			if i < firstB {
				firstB = i
			}
		default:
			t.Fatalf("unexpected sequence id %q", r.SequenceID)
		}
	}
	assert.Less(t, lastA, firstB)
}

func TestRunScanMissingFile(t *testing.T) {
	var buf bytes.Buffer
	_, err := RunScan(context.Background(), &buf, cli.ScanOptions{
		Sequences: []string{filepath.Join(t.TempDir(), "nope.fa")},
		Output:    "tsv",
	})
	assert.Error(t, err)
}

func TestBuildRulesWithoutFile(t *testing.T) {
	rules, err := BuildRules("")
	require.NoError(t, err)
	assert.Len(t, rules, 11)
}
