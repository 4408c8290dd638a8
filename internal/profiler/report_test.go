package profiler

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		{
			Name:          "B",
			DistinctCount: 4,
			TotalCount:    4,
			MissingCount:  0,
			PresentCount:  4,
			PctMissing:    0.0,
			PctDistinct:   1.0,
		},
		{
			Name:          "A",
			DistinctCount: 2,
			TotalCount:    4,
			MissingCount:  1,
			PresentCount:  3,
			PctMissing:    25.0,
			PctDistinct:   0.5,
		},
	}
}

func TestReportWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, sampleReport().WriteCSV(&sb))

	want := "column_name,distinct_count,present_count,missing_count,pct_missing,pct_distinct\n" +
		"B,4,4,0,0.00,1.00\n" +
		"A,2,3,1,25.00,0.50\n"
	assert.Equal(t, want, sb.String())
}

func TestReportWriteCSVEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Report{}.WriteCSV(&sb))
	assert.Equal(t, "column_name,distinct_count,present_count,missing_count,pct_missing,pct_distinct\n", sb.String())
}

func TestReportWriteJSON(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, sampleReport().WriteJSON(&sb))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "B", decoded[0]["column_name"])
	assert.Equal(t, float64(4), decoded[0]["distinct_count"])
	assert.Equal(t, float64(25), decoded[1]["pct_missing"])
}
