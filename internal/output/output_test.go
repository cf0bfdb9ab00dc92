// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nonb/pkg/api"
	"nonb/scan"
)

var sample = scan.Table{
	{SequenceID: "s1", Motif: "Z-DNA", Start: 1, End: 14, Seq: "CGCGCGCGCGCGCG", Length: 14},
	{SequenceID: "s2", Motif: "Inverted Repeat", Start: 3, End: 9, Seq: "ATGGGTA", Length: 20},
}

func TestTSVHeaderMatchesColumns(t *testing.T) {
	assert.Equal(t, strings.Join(Columns, "\t"), TSVHeader)
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sample, true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "s1\tZ-DNA\t1\t14\tCGCGCGCGCGCGCG\t14", lines[1])
	assert.Equal(t, "s2\tInverted Repeat\t3\t9\tATGGGTA\t20", lines[2])
}

func TestWriteTSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sample, false))
	assert.NotContains(t, buf.String(), "sequence_id")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample, true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(Columns, ","), lines[0])
	assert.Equal(t, "s1,Z-DNA,1,14,CGCGCGCGCGCGCG,14", lines[1])
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample))

	var rows []api.RowV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "s1", rows[0].SequenceID)
	assert.Equal(t, "CGCGCGCGCGCGCG", rows[0].MatchedText)
	assert.Equal(t, 20, rows[1].Length)
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, sample))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var row api.RowV1
		require.NoError(t, json.Unmarshal([]byte(line), &row))
	}
}

func TestWriteJSONEmptyTableIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, scan.Table{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}
