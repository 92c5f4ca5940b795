package minigu_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minigu "github.com/minigu-db/minigu-go"
)

func sampleResult() *minigu.Result {
	return &minigu.Result{
		Schema: []minigu.Column{
			{Name: "x", Type: "INT64"},
			{Name: "y", Type: "INT64"},
		},
		Data: [][]any{
			{1, 2},
			{3, 4},
		},
		Metrics: map[string]float64{"elapsed_ms": 0.5},
	}
}

func TestResultRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   *minigu.Result
		expected []map[string]any
	}{
		{
			name:   "zips column names with rows",
			result: sampleResult(),
			expected: []map[string]any{
				{"x": 1, "y": 2},
				{"x": 3, "y": 4},
			},
		},
		{
			name:     "empty schema yields empty records",
			result:   &minigu.Result{Data: [][]any{{1}}},
			expected: []map[string]any{},
		},
		{
			name:     "empty data yields empty records",
			result:   &minigu.Result{Schema: []minigu.Column{{Name: "x"}}},
			expected: []map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.expected, tt.result.Records()); diff != "" {
				t.Errorf("Records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultRecordsIsRestartable(t *testing.T) {
	t.Parallel()

	result := sampleResult()

	first := result.Records()
	second := result.Records()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Records calls differ (-first +second):\n%s", diff)
	}
}

func TestResultRowCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, sampleResult().RowCount())
	assert.Equal(t, 0, (&minigu.Result{}).RowCount())
	assert.Equal(t, 0, (*minigu.Result)(nil).RowCount())
}

func TestResultAsMap(t *testing.T) {
	t.Parallel()

	m := sampleResult().AsMap()

	assert.Equal(t, 2, m["row_count"])
	assert.Equal(t, map[string]float64{"elapsed_ms": 0.5}, m["metrics"])

	schema, ok := m["schema"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, schema, 2)
	assert.Equal(t, "x", schema[0]["name"])
	assert.Equal(t, "INT64", schema[0]["type"])
}

func TestResultWhere(t *testing.T) {
	t.Parallel()

	result := &minigu.Result{
		Schema: []minigu.Column{
			{Name: "name", Type: "STRING"},
			{Name: "age", Type: "INT64"},
		},
		Data: [][]any{
			{"Alice", 30},
			{"Bob", 25},
			{"Carol", 41},
		},
	}

	filtered, err := result.Where("age > 28")
	require.NoError(t, err)

	expected := [][]any{
		{"Alice", 30},
		{"Carol", 41},
	}
	if diff := cmp.Diff(expected, filtered.Data); diff != "" {
		t.Errorf("Where mismatch (-want +got):\n%s", diff)
	}

	// The receiver is untouched.
	assert.Equal(t, 3, result.RowCount())
}

func TestResultWhereInvalidExpression(t *testing.T) {
	t.Parallel()

	_, err := sampleResult().Where("x >")
	require.Error(t, err)
}

func TestResultWhereEmptyResult(t *testing.T) {
	t.Parallel()

	filtered, err := (&minigu.Result{}).Where("true")
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.RowCount())
}
