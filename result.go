package minigu

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Column is one column descriptor in a result schema.
type Column struct {
	Name string
	Type string
}

// Result holds one query response: column descriptors, rows, and the
// engine's execution metrics. Every row's length equals len(Schema), and
// RowCount always equals len(Data). Results are value objects created per
// call; projecting them never consumes them.
type Result struct {
	Schema  []Column
	Data    [][]any
	Metrics map[string]float64
}

// RowCount returns the number of rows.
func (r *Result) RowCount() int {
	if r == nil {
		return 0
	}

	return len(r.Data)
}

// Records zips column names with each row, producing one keyed record per
// row. It returns an empty slice if either the schema or the data is empty.
// Records only reads stored state, so repeated calls yield identical
// results.
func (r *Result) Records() []map[string]any {
	if r == nil || len(r.Schema) == 0 || len(r.Data) == 0 {
		return []map[string]any{}
	}

	records := make([]map[string]any, 0, len(r.Data))

	for _, row := range r.Data {
		record := make(map[string]any, len(r.Schema))

		for i, col := range r.Schema {
			if i < len(row) {
				record[col.Name] = row[i]
			}
		}

		records = append(records, record)
	}

	return records
}

// AsMap returns a pure serialization of the result:
// {schema, data, metrics, row_count}.
func (r *Result) AsMap() map[string]any {
	schema := make([]map[string]any, 0, len(r.Schema))
	for _, col := range r.Schema {
		schema = append(schema, map[string]any{"name": col.Name, "type": col.Type})
	}

	return map[string]any{
		"schema":    schema,
		"data":      r.Data,
		"metrics":   r.Metrics,
		"row_count": r.RowCount(),
	}
}

// Where returns a new result containing only the rows whose projected
// record satisfies condition, an expr-lang boolean expression evaluated
// against column names (e.g. "age > 30 && name != ''"). The receiver is
// left untouched; filtering is purely client-side.
func (r *Result) Where(condition string) (*Result, error) {
	program, err := expr.Compile(condition, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("minigu: invalid filter expression: %w", err)
	}

	filtered := &Result{
		Schema:  r.Schema,
		Metrics: r.Metrics,
	}

	records := r.Records()
	if len(records) == 0 {
		return filtered, nil
	}

	for i, row := range r.Data {
		out, err := expr.Run(program, records[i])
		if err != nil {
			return nil, fmt.Errorf("minigu: filter evaluation failed: %w", err)
		}

		if keep, ok := out.(bool); ok && keep {
			filtered.Data = append(filtered.Data, row)
		}
	}

	return filtered, nil
}
